package backup

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

func setupSQLiteStore(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goalpost.db")

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE user_states (
		user_id TEXT PRIMARY KEY,
		doc TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`); err != nil {
		t.Fatalf("failed to create table: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO user_states (user_id, doc, updated_at) VALUES ('alice', '{}', '2026-03-14')`,
	); err != nil {
		t.Fatalf("failed to insert row: %v", err)
	}
	return path
}

func countRows(t *testing.T, path string) int {
	t.Helper()
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open %s: %v", path, err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM user_states").Scan(&count); err != nil {
		t.Fatalf("failed to count rows in %s: %v", path, err)
	}
	return count
}

func TestCreate_SQLiteSnapshot(t *testing.T) {
	mgr := NewManager(setupSQLiteStore(t))

	path, err := mgr.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if filepath.Dir(path) != mgr.BackupDir() {
		t.Errorf("backup landed in %s, want %s", filepath.Dir(path), mgr.BackupDir())
	}
	if got := countRows(t, path); got != 1 {
		t.Errorf("rows in snapshot = %d, want 1", got)
	}
}

func TestCreate_JSONSnapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "goalpost.json")
	doc := []byte(`{"version":1,"users":{}}`)
	if err := os.WriteFile(path, doc, 0600); err != nil {
		t.Fatalf("write store: %v", err)
	}

	mgr := NewManager(path)
	snap, err := mgr.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := os.ReadFile(snap)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if string(got) != string(doc) {
		t.Errorf("snapshot = %q, want %q", got, doc)
	}
}

func TestCreate_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "absent.db"))
	if _, err := mgr.Create(); err == nil {
		t.Error("expected error for missing store")
	}
}

func TestList_NewestFirstAndUniqueNames(t *testing.T) {
	mgr := NewManager(setupSQLiteStore(t))

	seen := make(map[string]bool)
	for i := 0; i < 4; i++ {
		path, err := mgr.Create()
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		name := filepath.Base(path)
		if seen[name] {
			t.Errorf("duplicate backup filename: %s", name)
		}
		seen[name] = true
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(backups) != 4 {
		t.Fatalf("backups = %d, want 4", len(backups))
	}
	for i := 1; i < len(backups); i++ {
		if backups[i].Timestamp.After(backups[i-1].Timestamp) {
			t.Error("backups are not sorted newest first")
		}
	}
	for _, b := range backups {
		if b.Size == 0 || b.Timestamp.IsZero() {
			t.Errorf("incomplete backup info: %+v", b)
		}
	}
}

func TestRotation(t *testing.T) {
	mgr := NewManager(setupSQLiteStore(t))

	for i := 0; i < MaxBackups+3; i++ {
		if _, err := mgr.Create(); err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		time.Sleep(5 * time.Millisecond)
	}

	backups, err := mgr.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("backups after rotation = %d, want %d", len(backups), MaxBackups)
	}
}

func TestRestore(t *testing.T) {
	storePath := setupSQLiteStore(t)
	mgr := NewManager(storePath)

	snap, err := mgr.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	db, err := sql.Open("sqlite", storePath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if _, err := db.Exec(
		`INSERT INTO user_states (user_id, doc, updated_at) VALUES ('bob', '{}', '2026-03-15')`,
	); err != nil {
		t.Fatalf("insert: %v", err)
	}
	db.Close()

	if got := countRows(t, storePath); got != 2 {
		t.Fatalf("rows before restore = %d, want 2", got)
	}

	if err := mgr.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if got := countRows(t, storePath); got != 1 {
		t.Errorf("rows after restore = %d, want 1", got)
	}
}

func TestRestore_TakesSafetySnapshotFirst(t *testing.T) {
	mgr := NewManager(setupSQLiteStore(t))

	snap, err := mgr.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	before, _ := mgr.List()

	if err := mgr.Restore(snap); err != nil {
		t.Fatalf("restore: %v", err)
	}

	after, err := mgr.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(after) != len(before)+1 {
		t.Errorf("backups after restore = %d, want %d", len(after), len(before)+1)
	}
}

func TestRestore_RejectsCorruptSnapshot(t *testing.T) {
	mgr := NewManager(setupSQLiteStore(t))
	if err := os.MkdirAll(mgr.BackupDir(), 0700); err != nil {
		t.Fatal(err)
	}

	bad := filepath.Join(mgr.BackupDir(), "goalpost-20260314-120000.db")
	if err := os.WriteFile(bad, []byte("not a database"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := mgr.Restore(bad); err == nil {
		t.Error("expected restore of a corrupt snapshot to fail")
	}
}
