package domain

import "fmt"

// Entry represents a single reference item in the catalog
type Entry struct {
	Title       string  `yaml:"title"`
	Command     string  `yaml:"command"`
	Description *string `yaml:"description,omitempty"` // nil when the entry has no description
}

// HasDescription reports whether the entry carries a description
func (e Entry) HasDescription() bool {
	return e.Description != nil
}

// DescriptionText returns the description or "" when absent
func (e Entry) DescriptionText() string {
	if e.Description == nil {
		return ""
	}
	return *e.Description
}

// Category represents a named, ordered group of entries
type Category struct {
	Name    string  `yaml:"name"`
	Entries []Entry `yaml:"entries"`
}

// Catalog is the full ordered set of categories
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// CategoryNames returns category names in catalog order
func (c *Catalog) CategoryNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.Categories))
	for _, cat := range c.Categories {
		names = append(names, cat.Name)
	}
	return names
}

// EntryCount returns the total number of entries across all categories
func (c *Catalog) EntryCount() int {
	if c == nil {
		return 0
	}
	count := 0
	for _, cat := range c.Categories {
		count += len(cat.Entries)
	}
	return count
}

// EntryKey identifies an entry by its owning category and position
type EntryKey struct {
	Category string
	Index    int // position within the category in catalog order
}

func (k EntryKey) String() string {
	return fmt.Sprintf("%s#%d", k.Category, k.Index)
}

// ViewEntry is an entry as it appears in a filtered view
type ViewEntry struct {
	Key   EntryKey
	Entry Entry
}

// ViewCategory is a category with the entries that survived filtering
type ViewCategory struct {
	Name    string
	Entries []ViewEntry
}

// FilteredView is the derived subset of the catalog eligible for display
type FilteredView []ViewCategory

// EntryCount returns the number of entries in the view
func (v FilteredView) EntryCount() int {
	count := 0
	for _, cat := range v {
		count += len(cat.Entries)
	}
	return count
}

// Keys returns the keys of all entries in view order
func (v FilteredView) Keys() []EntryKey {
	keys := make([]EntryKey, 0, v.EntryCount())
	for _, cat := range v {
		for _, e := range cat.Entries {
			keys = append(keys, e.Key)
		}
	}
	return keys
}

// StringPtr is a helper for building optional descriptions
func StringPtr(s string) *string {
	return &s
}

// Selection is the optional selected category. The zero value selects nothing.
type Selection struct {
	name string
	set  bool
}

// NoSelection is the absent selection
var NoSelection = Selection{}

// Select returns a selection of the named category
func Select(name string) Selection {
	return Selection{name: name, set: true}
}

// Name returns the selected category name and whether one is selected
func (s Selection) Name() (string, bool) {
	return s.name, s.set
}

// IsSet reports whether a category is selected
func (s Selection) IsSet() bool {
	return s.set
}

// Is reports whether name is the selected category
func (s Selection) Is(name string) bool {
	return s.set && s.name == name
}

func (s Selection) String() string {
	if !s.set {
		return "<none>"
	}
	return s.name
}

// Filters is the combined search and selection state. It is replaced as a
// whole, so readers always see both halves of a change together.
type Filters struct {
	Query     string
	Selection Selection
}

// Active reports whether any filter narrows the catalog
func (f Filters) Active() bool {
	return f.Query != "" || f.Selection.IsSet()
}
