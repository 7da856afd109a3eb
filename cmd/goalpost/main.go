package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/kwheeler/goalpost/internal/cli"
	"github.com/kwheeler/goalpost/internal/config"
	"github.com/kwheeler/goalpost/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DB      string `help:"Store location: a SQLite path, a *.json path, or a postgres:// URL. Overrides GOALPOST_DB." type:"path"`
	User    string `help:"User whose goals to operate on. Overrides GOALPOST_USER."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize goalpost storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	List    cli.ListCmd    `cmd:"" help:"List today's goals."`
	Catalog cli.CatalogCmd `cmd:"" help:"Browse the built-in goal catalog."`
	Add     cli.AddCmd     `cmd:"" help:"Start tracking a goal."`
	Tap     cli.TapCmd     `cmd:"" help:"Advance a goal by one segment."`
	Untap   cli.UntapCmd   `cmd:"" help:"Undo one segment of progress."`
	Archive cli.ArchiveCmd `cmd:"" help:"Archive a goal, keeping its history."`
	Remove  cli.RemoveCmd  `cmd:"" help:"Remove a goal and its history."`
	Habit   struct {
		Add    cli.HabitAddCmd    `cmd:"" help:"Create a custom habit."`
		List   cli.HabitListCmd   `cmd:"" help:"List custom habits."`
		Remove cli.HabitRemoveCmd `cmd:"" help:"Delete a custom habit."`
	} `cmd:"" help:"Manage custom habits."`
	History cli.HistoryCmd `cmd:"" help:"Show completion history as a month grid."`
	Export  cli.ExportCmd  `cmd:"" help:"Export a PDF progress report."`
	Backup  struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the store."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the store from a backup."`
	} `cmd:"" help:"Manage store backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on the installation."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("goalpost"),
		kong.Description("Tap-to-track daily goal and habit companion"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.3.0"},
	)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.DB != "" {
		cfg.DB = CLI.DB
	}
	if CLI.User != "" {
		cfg.User = CLI.User
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var store storage.Provider
	switch {
	case strings.HasPrefix(dbPath, "postgres://") || strings.HasPrefix(dbPath, "postgresql://"):
		store = storage.NewPostgresStore(dbPath)
	case strings.HasSuffix(dbPath, ".json"):
		store = storage.NewJSONStore(dbPath)
	default:
		store = storage.NewSQLiteStore(dbPath)
	}

	appCtx := &cli.Context{
		Config: cfg,
		Store:  store,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
