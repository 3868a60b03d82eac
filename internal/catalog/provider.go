package catalog

import (
	"errors"
	"fmt"
	"os"

	"cmdwiki/internal/domain"
)

var (
	// ErrAlreadyLoaded is returned when a store is asked to load a second time
	ErrAlreadyLoaded = errors.New("catalog already loaded")
	// ErrEmptyName is returned for a category without a name
	ErrEmptyName = errors.New("category name is empty")
	// ErrDuplicateCategory is returned when two categories share a name
	ErrDuplicateCategory = errors.New("duplicate category name")
)

// Provider supplies the full catalog. Load is synchronous and side-effect free.
type Provider interface {
	Load() (*domain.Catalog, error)
}

// ProviderFunc adapts a function to the Provider interface
type ProviderFunc func() (*domain.Catalog, error)

func (f ProviderFunc) Load() (*domain.Catalog, error) { return f() }

// Static returns a provider serving a fixed catalog
func Static(c *domain.Catalog) Provider {
	return ProviderFunc(func() (*domain.Catalog, error) {
		return c, nil
	})
}

// FileProvider reads a YAML catalog from disk
type FileProvider struct {
	Path string
}

func (p FileProvider) Load() (*domain.Catalog, error) {
	f, err := os.Open(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", p.Path, err)
	}
	defer f.Close()

	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", p.Path, err)
	}
	return c, nil
}

// ForPath picks the file provider when path is set, the built-in catalog otherwise
func ForPath(path string) Provider {
	if path == "" {
		return Builtin()
	}
	return FileProvider{Path: path}
}

// Validate checks that every category has a unique, non-empty name
func Validate(c *domain.Catalog) error {
	if c == nil {
		return nil
	}
	seen := make(map[string]int, len(c.Categories))
	for i, cat := range c.Categories {
		if cat.Name == "" {
			return fmt.Errorf("category %d: %w", i, ErrEmptyName)
		}
		if prev, ok := seen[cat.Name]; ok {
			return fmt.Errorf("%q at positions %d and %d: %w", cat.Name, prev, i, ErrDuplicateCategory)
		}
		seen[cat.Name] = i
	}
	return nil
}
