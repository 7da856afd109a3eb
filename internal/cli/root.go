package cli

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/kwheeler/goalpost/internal/backup"
	"github.com/kwheeler/goalpost/internal/config"
	"github.com/kwheeler/goalpost/internal/models"
	"github.com/kwheeler/goalpost/internal/session"
	"github.com/kwheeler/goalpost/internal/storage"
)

type Context struct {
	Config config.Config
	Store  storage.Provider

	sess *session.Session
}

// Session opens (once) the signed-in user's session. Commands that
// mutate state must call FlushSession before returning so the debounced
// save lands before the process exits.
func (ctx *Context) Session() (*session.Session, error) {
	if ctx.sess != nil {
		return ctx.sess, nil
	}

	sess, err := session.New(ctx.Config.User, ctx.Store,
		session.WithDebounce(ctx.Config.SaveDebounce()),
		session.WithNotify(func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
		}),
	)
	if err != nil {
		return nil, err
	}
	if err := sess.Load(); err != nil {
		return nil, err
	}
	ctx.sess = sess
	return sess, nil
}

func (ctx *Context) FlushSession() error {
	if ctx.sess == nil {
		return nil
	}
	return ctx.sess.Flush()
}

// PerformAutomaticBackup snapshots the store, logging failures without
// blocking startup.
func (ctx *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	if _, err := mgr.Create(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: automatic backup failed: %v\n", err)
	}
}

// progressBar renders goal progress as one filled cell per completed
// segment.
func progressBar(g models.Goal) string {
	done := int(math.Round(g.Progress * float64(g.TotalSegments) / 100))
	if done > g.TotalSegments {
		done = g.TotalSegments
	}
	return "[" + strings.Repeat("█", done) + strings.Repeat("░", g.TotalSegments-done) + "]"
}

func formatGoalLine(g models.Goal) string {
	mark := " "
	if g.IsCompleted {
		mark = "x"
	}
	return fmt.Sprintf("  [%s] %-24s %s %3.0f%%  (%s)", mark, g.Title, progressBar(g), g.Progress, shortID(g.ID))
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
