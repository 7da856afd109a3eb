package cli

import (
	"fmt"
	"time"

	"github.com/kwheeler/goalpost/internal/engine"
	"github.com/kwheeler/goalpost/internal/models"
)

type HistoryCmd struct {
	Goal  string `arg:"" optional:"" help:"Goal ID, ID prefix, or title. Omit for all goals."`
	Month string `help:"Month to show, as YYYY-MM. Defaults to the current month."`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	sess, err := ctx.Session()
	if err != nil {
		return err
	}

	month := time.Now()
	if c.Month != "" {
		month, err = time.ParseInLocation("2006-01", c.Month, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q, want YYYY-MM", c.Month)
		}
	}

	goals := sess.Goals()
	if c.Goal != "" {
		g, err := sess.FindGoal(c.Goal)
		if err != nil {
			return err
		}
		goals = []models.Goal{g}
	}
	if len(goals) == 0 {
		fmt.Println("No goals to show history for.")
		return nil
	}

	for _, g := range goals {
		fmt.Printf("%s - %s\n", g.Title, month.Format("January 2006"))
		printMonthGrid(g.CompletedDays, month)
		fmt.Println()
	}
	return nil
}

// printMonthGrid draws a Sunday-first calendar with completed days
// marked.
func printMonthGrid(days models.CompletedDays, month time.Time) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	fmt.Println("  Su  Mo  Tu  We  Th  Fr  Sa")
	for i := 0; i < int(first.Weekday()); i++ {
		fmt.Print("    ")
	}

	completed := 0
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local)
		if days[engine.DayKey(date)] {
			fmt.Printf(" %2d*", day)
			completed++
		} else {
			fmt.Printf(" %2d ", day)
		}
		if date.Weekday() == time.Saturday {
			fmt.Println()
		}
	}
	fmt.Println()
	fmt.Printf("  %d days completed\n", completed)
}
