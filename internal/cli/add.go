package cli

import (
	"fmt"

	"github.com/kwheeler/goalpost/internal/catalog"
)

type AddCmd struct {
	Template string `arg:"" help:"Catalog template ID or title, or a custom habit ID with --habit."`
	Habit    bool   `help:"Treat the argument as a custom habit ID."`
}

func (c *AddCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	if c.Habit {
		g, err := sess.AddGoalFromCustomHabit(c.Template)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Added goal: %s (%d segments)\n", g.Title, g.TotalSegments)
		return nil
	}

	t, ok := catalog.Find(c.Template)
	if !ok {
		return fmt.Errorf("no catalog template %q, see 'goalpost catalog'", c.Template)
	}
	g, err := sess.AddGoal(t)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Added goal: %s (%d segments)\n", g.Title, g.TotalSegments)
	if len(g.CompletedDays) > 0 {
		fmt.Printf("  Restored history: %d completed days\n", len(g.CompletedDays))
	}
	return nil
}
