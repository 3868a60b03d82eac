package cli

import (
	"fmt"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/ui/services/query"
)

// filteredView runs the same filter engine the TUI uses
func filteredView(app *App, q, category string) (domain.FilteredView, error) {
	engine := query.NewService(app.store, nil)
	engine.SetQuery(q)
	if category != "" {
		if _, ok := app.store.Category(category); !ok {
			return nil, fmt.Errorf("unknown category: %q (run `cmdwiki categories` to list them)", category)
		}
		engine.Select(category)
	}
	return engine.View(), nil
}

// asCatalog turns a view back into catalog form for YAML output
func asCatalog(view domain.FilteredView) *domain.Catalog {
	c := &domain.Catalog{Categories: make([]domain.Category, 0, len(view))}
	for _, cat := range view {
		out := domain.Category{Name: cat.Name, Entries: make([]domain.Entry, 0, len(cat.Entries))}
		for _, e := range cat.Entries {
			out.Entries = append(out.Entries, e.Entry)
		}
		c.Categories = append(c.Categories, out)
	}
	return c
}
