package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type ArchiveCmd struct {
	Goal string `arg:"" help:"Goal ID, ID prefix, or title."`
}

func (c *ArchiveCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	g, err := sess.FindGoal(c.Goal)
	if err != nil {
		return err
	}
	if err := sess.Archive(g.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Archived %s. Re-adding a goal with the same title restores its history.\n", g.Title)
	return nil
}

type RemoveCmd struct {
	Goal  string `arg:"" help:"Goal ID, ID prefix, or title."`
	Force bool   `help:"Skip the confirmation prompt."`
}

func (c *RemoveCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	g, err := sess.FindGoal(c.Goal)
	if err != nil {
		return err
	}

	if !c.Force {
		fmt.Printf("Remove %s and its %d days of history? [y/N]: ", g.Title, len(g.CompletedDays))
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled.")
			return nil
		}
	}

	if err := sess.Delete(g.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Removed %s\n", g.Title)
	return nil
}
