package cli

import (
	"fmt"

	"github.com/kwheeler/goalpost/internal/catalog"
)

type CatalogCmd struct {
	Category string `help:"Show only one category."`
}

func (c *CatalogCmd) Run(ctx *Context) error {
	categories := catalog.Categories()
	if c.Category != "" {
		if _, ok := catalog.ByCategory(c.Category); !ok {
			return fmt.Errorf("unknown category: %s", c.Category)
		}
		categories = []string{c.Category}
	}

	for _, name := range categories {
		templates, ok := catalog.ByCategory(name)
		if !ok {
			continue
		}
		fmt.Printf("%s:\n", name)
		for _, t := range templates {
			fmt.Printf("  %-14s %s (%d segments) - %s\n", t.ID, t.Title, t.TotalSegments, t.Description)
		}
		fmt.Println()
	}
	return nil
}
