package input

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Cursor        int
	Rows          int
	Categories    int
	Focused       int
	Query         string
	FiltersActive bool
}

// CurrentIndex returns the cursor row
func (c *ModelContext) CurrentIndex() int {
	return c.Cursor
}

// TotalItems returns the number of visible entries
func (c *ModelContext) TotalItems() int {
	return c.Rows
}

// CategoryCount returns the number of catalog categories
func (c *ModelContext) CategoryCount() int {
	return c.Categories
}

// FocusedCategory returns the focused category button
func (c *ModelContext) FocusedCategory() int {
	return c.Focused
}

// SearchQuery returns the current search text
func (c *ModelContext) SearchQuery() string {
	return c.Query
}

// HasActiveFilters reports whether a query or selection narrows the view
func (c *ModelContext) HasActiveFilters() bool {
	return c.FiltersActive
}
