package cli

import (
	"fmt"
)

type HabitAddCmd struct {
	Title       string `arg:"" help:"Habit title."`
	Segments    int    `help:"Taps needed to complete the habit each day." default:"1"`
	Description string `help:"Optional description."`
	Color       string `help:"Display color name." default:"blue"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	h, err := sess.AddCustomHabit(c.Title, c.Description, c.Color, c.Segments)
	if err != nil {
		return err
	}
	fmt.Printf("✓ Created habit %s (%d segments)\n", h.Title, h.TotalSegments)
	fmt.Printf("  Start tracking it with: goalpost add --habit %s\n", shortID(h.ID))
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	habits := sess.CustomHabits()
	if len(habits) == 0 {
		fmt.Println("No custom habits. Create one with 'goalpost habit add'.")
		return nil
	}

	fmt.Println("Custom habits:")
	for _, h := range habits {
		fmt.Printf("  %-24s %d segments  (%s)\n", h.Title, h.TotalSegments, shortID(h.ID))
		if h.Description != "" {
			fmt.Printf("      %s\n", h.Description)
		}
	}
	return nil
}

type HabitRemoveCmd struct {
	Habit string `arg:"" help:"Custom habit ID or ID prefix."`
}

func (c *HabitRemoveCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}
	defer ctx.FlushSession()

	id := c.Habit
	for _, h := range sess.CustomHabits() {
		if len(h.ID) >= len(id) && h.ID[:len(id)] == id {
			id = h.ID
			break
		}
	}
	if err := sess.RemoveCustomHabit(id); err != nil {
		return err
	}
	fmt.Println("✓ Habit removed. Goals created from it are unaffected.")
	return nil
}
