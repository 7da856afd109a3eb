package cli

import (
	"fmt"

	"github.com/kwheeler/goalpost/internal/engine"
)

type TapCmd struct {
	Goal string `arg:"" help:"Goal ID, ID prefix, or title."`
}

func (c *TapCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	g, err := sess.FindGoal(c.Goal)
	if err != nil {
		return err
	}

	updated, ev, err := sess.Advance(g.ID)
	if err != nil {
		return err
	}

	switch ev {
	case engine.EventCompleted:
		fmt.Printf("✓ %s completed for today!\n", updated.Title)
	case engine.EventUncompleted:
		fmt.Printf("↺ %s restarted at 0%%\n", updated.Title)
	default:
		fmt.Println(formatGoalLine(updated))
	}
	return nil
}

type UntapCmd struct {
	Goal string `arg:"" help:"Goal ID, ID prefix, or title."`
}

func (c *UntapCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	g, err := sess.FindGoal(c.Goal)
	if err != nil {
		return err
	}

	updated, _, err := sess.Retreat(g.ID)
	if err != nil {
		return err
	}
	fmt.Println(formatGoalLine(updated))
	return nil
}
