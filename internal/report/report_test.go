package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kwheeler/goalpost/internal/models"
)

func TestWritePDF(t *testing.T) {
	state := models.NewUserState()
	state.Goals = []models.Goal{
		{
			ID:            "g1",
			Title:         "Read",
			Progress:      100,
			TotalSegments: 3,
			IsCompleted:   true,
			CompletedDays: models.CompletedDays{"2026-03-13": true, "2026-03-14": true},
			CreatedAt:     time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local),
		},
		{
			ID:            "g2",
			Title:         "Drink water",
			Progress:      50,
			TotalSegments: 8,
			CompletedDays: models.CompletedDays{},
			CreatedAt:     time.Date(2026, 3, 12, 9, 0, 0, 0, time.Local),
		},
	}
	state.ArchivedGoals = models.ArchivedGoals{
		"Meditate": {"2026-02-01": true},
	}

	path := filepath.Join(t.TempDir(), "report.pdf")
	when := time.Date(2026, 3, 14, 18, 0, 0, 0, time.Local)
	if err := WritePDF(path, state, when); err != nil {
		t.Fatalf("write pdf: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read pdf: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("pdf is empty")
	}
	if string(data[:5]) != "%PDF-" {
		t.Errorf("file does not look like a PDF: %q", data[:5])
	}
}

func TestWritePDF_EmptyState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	if err := WritePDF(path, models.NewUserState(), time.Now()); err != nil {
		t.Fatalf("write pdf: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("pdf not written: %v", err)
	}
}
