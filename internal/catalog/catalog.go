package catalog

import (
	"sort"
	"strings"
)

// Template is a built-in habit a goal can be created from. TotalSegments
// fixes the goal's step size at creation.
type Template struct {
	ID            string
	Title         string
	Description   string
	Color         string
	TotalSegments int
}

var builtin = map[string][]Template{
	"Health": {
		{ID: "water", Title: "Drink water", Description: "Eight glasses through the day", Color: "blue", TotalSegments: 8},
		{ID: "walk", Title: "Walk 10k steps", Description: "Split into morning and evening walks", Color: "green", TotalSegments: 2},
		{ID: "stretch", Title: "Stretch", Description: "Ten minutes of stretching", Color: "teal", TotalSegments: 1},
		{ID: "sleep", Title: "Sleep by 23:00", Description: "Lights out before eleven", Color: "indigo", TotalSegments: 1},
	},
	"Mind": {
		{ID: "read", Title: "Read", Description: "Three reading sessions", Color: "amber", TotalSegments: 3},
		{ID: "meditate", Title: "Meditate", Description: "One sitting, any length", Color: "purple", TotalSegments: 1},
		{ID: "journal", Title: "Journal", Description: "Morning pages", Color: "rose", TotalSegments: 1},
		{ID: "language", Title: "Language practice", Description: "Two short study blocks", Color: "cyan", TotalSegments: 2},
	},
	"Productivity": {
		{ID: "deepwork", Title: "Deep work", Description: "Four focused pomodoros", Color: "red", TotalSegments: 4},
		{ID: "inbox", Title: "Inbox zero", Description: "Clear the inbox once", Color: "slate", TotalSegments: 1},
		{ID: "plan-tomorrow", Title: "Plan tomorrow", Description: "Write tomorrow's top three", Color: "orange", TotalSegments: 1},
	},
	"Lifestyle": {
		{ID: "cook", Title: "Cook at home", Description: "Two home-cooked meals", Color: "lime", TotalSegments: 2},
		{ID: "no-spend", Title: "No-spend day", Description: "No discretionary purchases", Color: "emerald", TotalSegments: 1},
		{ID: "tidy", Title: "Tidy up", Description: "Three ten-minute tidying bursts", Color: "yellow", TotalSegments: 3},
	},
}

// Categories returns the catalog category names in stable order.
func Categories() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ByCategory returns the templates of one category.
func ByCategory(name string) ([]Template, bool) {
	for cat, templates := range builtin {
		if strings.EqualFold(cat, name) {
			return templates, true
		}
	}
	return nil, false
}

// All returns every template across categories.
func All() []Template {
	var out []Template
	for _, name := range Categories() {
		out = append(out, builtin[name]...)
	}
	return out
}

// Find looks a template up by ID or, failing that, by title.
func Find(idOrTitle string) (Template, bool) {
	for _, t := range All() {
		if t.ID == idOrTitle {
			return t, true
		}
	}
	for _, t := range All() {
		if strings.EqualFold(t.Title, idOrTitle) {
			return t, true
		}
	}
	return Template{}, false
}
