package query

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/ui/logic"
)

const memoSize = 128

// Service is the filter engine. It owns the filter state and derives the
// filtered view from it, memoising results per catalog version.
type Service struct {
	catalog CatalogSource
	bus     eventbus.EventBus

	filters domain.Filters
	memo    *lru.Cache[cacheKey, domain.FilteredView]
	stats   Stats
}

// NewService creates a filter engine over the catalog; bus may be nil
func NewService(catalog CatalogSource, bus eventbus.EventBus) *Service {
	memo, err := lru.New[cacheKey, domain.FilteredView](memoSize)
	if err != nil {
		// only returned for a non-positive size
		panic(err)
	}
	return &Service{
		catalog: catalog,
		bus:     bus,
		memo:    memo,
	}
}

// Filters returns the current filter state
func (s *Service) Filters() domain.Filters {
	return s.filters
}

// SetQuery replaces the search text and reports whether it changed
func (s *Service) SetQuery(query string) bool {
	if s.filters.Query == query {
		return false
	}
	s.filters = domain.Filters{Query: query, Selection: s.filters.Selection}
	return true
}

// Select makes name the selected category and reports whether it changed
func (s *Service) Select(name string) bool {
	if s.filters.Selection.Is(name) {
		return false
	}
	s.filters = domain.Filters{Query: s.filters.Query, Selection: domain.Select(name)}
	return true
}

// Deselect clears the selected category and reports whether one was set
func (s *Service) Deselect() bool {
	if !s.filters.Selection.IsSet() {
		return false
	}
	s.filters = domain.Filters{Query: s.filters.Query, Selection: domain.NoSelection}
	return true
}

// Reset clears query and selection in a single assignment and publishes
// one FiltersResetEvent
func (s *Service) Reset() {
	s.filters = domain.Filters{}
	if s.bus != nil {
		s.bus.Publish(eventbus.FiltersResetEvent{})
	}
}

// View returns the filtered view for the current filters. The returned view
// is shared with the memo cache and must not be modified.
func (s *Service) View() domain.FilteredView {
	return s.ViewFor(s.filters)
}

// ViewFor returns the filtered view for arbitrary filters without touching
// the engine's own state
func (s *Service) ViewFor(f domain.Filters) domain.FilteredView {
	key := cacheKey{filters: f, version: s.catalog.Version()}
	if view, ok := s.memo.Get(key); ok {
		s.stats.Hits++
		return view
	}
	s.stats.Misses++

	view := logic.ComputeFilteredView(s.catalog.Snapshot(), f.Query, f.Selection)
	s.memo.Add(key, view)
	return view
}

// Rows returns the current view flattened into cursor rows
func (s *Service) Rows() []logic.Row {
	return logic.Flatten(s.View())
}

// MatchCount returns the number of entries in the current view
func (s *Service) MatchCount() int {
	return s.View().EntryCount()
}

// Invalidate drops every memoised view
func (s *Service) Invalidate() {
	s.memo.Purge()
}

// Stats returns memo cache counters
func (s *Service) Stats() Stats {
	st := s.stats
	st.Size = s.memo.Len()
	return st
}
