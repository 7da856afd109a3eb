package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/kwheeler/goalpost/internal/report"
)

type ExportCmd struct {
	Output string `help:"Output PDF path." type:"path"`
}

func (c *ExportCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	now := time.Now()
	path := c.Output
	if path == "" {
		path = fmt.Sprintf("goalpost-report-%s.pdf", now.Format("2006-01-02"))
	}

	if err := report.WritePDF(path, sess.State(), now); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	abs, _ := filepath.Abs(path)
	fmt.Printf("✓ Report written to %s\n", abs)
	return nil
}
