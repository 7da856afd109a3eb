package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/kwheeler/goalpost/internal/catalog"
)

type GoalFormModel struct {
	TemplateID string
}

type HabitFormModel struct {
	Title       string
	Description string
	Segments    string
	Color       string
	Track       bool
}

// NewGoalForm builds a catalog picker grouped by category.
func NewGoalForm(fm *GoalFormModel) *huh.Form {
	var options []huh.Option[string]
	for _, category := range catalog.Categories() {
		templates, _ := catalog.ByCategory(category)
		for _, t := range templates {
			label := fmt.Sprintf("%s / %s (%d segments)", category, t.Title, t.TotalSegments)
			options = append(options, huh.NewOption(label, t.ID))
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a goal").
				Options(options...).
				Value(&fm.TemplateID),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewHabitForm builds the custom-habit creation form.
func NewHabitForm(fm *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit Name").
				Value(&fm.Title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("habit name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Value(&fm.Description),
			huh.NewInput().
				Title("Segments per day").
				Description("Taps needed to complete the habit each day").
				Value(&fm.Segments).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < 1 {
						return fmt.Errorf("segments must be at least 1")
					}
					return nil
				}),
			huh.NewInput().
				Title("Color").
				Value(&fm.Color),
			huh.NewConfirm().
				Title("Start tracking today?").
				Value(&fm.Track),
		),
	).WithTheme(huh.ThemeDracula())
}
