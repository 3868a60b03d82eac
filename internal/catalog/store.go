package catalog

import (
	"fmt"
	"sync"
	"sync/atomic"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
)

// versions hands out a distinct version per loaded snapshot, so memoised
// views from one store never match another's.
var versions atomic.Uint64

// Store holds the catalog snapshot. It is loaded exactly once and never
// mutated afterwards; readers share the snapshot by reference.
type Store struct {
	mu       sync.RWMutex
	snapshot *domain.Catalog
	version  uint64
	bus      eventbus.EventBus
	// set once the provider has been called, whatever it returned
	attempted bool
}

// NewStore creates an empty store; bus may be nil
func NewStore(bus eventbus.EventBus) *Store {
	return &Store{bus: bus}
}

// Load invokes the provider and keeps a private copy of its catalog. The
// provider is called at most once per store, even when that call fails.
func (s *Store) Load(p Provider) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attempted {
		return ErrAlreadyLoaded
	}
	s.attempted = true

	c, err := p.Load()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	if c == nil {
		c = &domain.Catalog{}
	}
	if err := Validate(c); err != nil {
		return err
	}

	s.snapshot = clone(c)
	s.version = versions.Add(1)

	if s.bus != nil {
		s.bus.Publish(eventbus.CatalogLoadedEvent{
			Categories: len(s.snapshot.Categories),
			Entries:    s.snapshot.EntryCount(),
			Version:    s.version,
		})
	}
	return nil
}

// Loaded reports whether Load has succeeded
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot != nil
}

// Snapshot returns the read-only catalog, or an empty one before Load
func (s *Store) Snapshot() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return &domain.Catalog{}
	}
	return s.snapshot
}

// Version identifies the loaded snapshot; 0 before Load
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// CategoryNames returns category names in catalog order
func (s *Store) CategoryNames() []string {
	return s.Snapshot().CategoryNames()
}

// Category looks up a category by name
func (s *Store) Category(name string) (domain.Category, bool) {
	for _, cat := range s.Snapshot().Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return domain.Category{}, false
}

func clone(c *domain.Catalog) *domain.Catalog {
	out := &domain.Catalog{Categories: make([]domain.Category, len(c.Categories))}
	for i, cat := range c.Categories {
		entries := make([]domain.Entry, len(cat.Entries))
		for j, e := range cat.Entries {
			if e.Description != nil {
				e.Description = domain.StringPtr(*e.Description)
			}
			entries[j] = e
		}
		out.Categories[i] = domain.Category{Name: cat.Name, Entries: entries}
	}
	return out
}
