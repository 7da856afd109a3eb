package cli

import (
	"fmt"
)

type ListCmd struct {
	All bool `help:"Include goals already completed today."`
}

func (c *ListCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	goals := sess.Goals()
	if len(goals) == 0 {
		fmt.Println("No goals yet. Add one with 'goalpost add'.")
		return nil
	}

	fmt.Printf("Goals for %s:\n", sess.DayKey())
	shown := 0
	for _, g := range goals {
		if !c.All && g.IsCompleted {
			continue
		}
		fmt.Println(formatGoalLine(g))
		shown++
	}
	if shown == 0 {
		fmt.Println("  All goals completed today. Use --all to see them.")
	}
	return nil
}
