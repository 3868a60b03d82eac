package search

import (
	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/ui/logic"
)

// Service handles the search text. The text itself lives in the filter
// engine; this service publishes changes and answers highlight queries.
type Service struct {
	engine Engine
	bus    eventbus.EventBus
}

// NewService creates a new search service; bus may be nil
func NewService(engine Engine, bus eventbus.EventBus) *Service {
	return &Service{
		engine: engine,
		bus:    bus,
	}
}

// SetQuery stores the text verbatim; whitespace is not trimmed
func (s *Service) SetQuery(query string) {
	if !s.engine.SetQuery(query) {
		return
	}
	if s.bus != nil {
		s.bus.Publish(eventbus.SearchChangedEvent{
			Query:   query,
			Matches: s.engine.MatchCount(),
		})
	}
}

// Clear empties the search, keeping the selection
func (s *Service) Clear() {
	s.SetQuery("")
}

// Query returns the current search text
func (s *Service) Query() string {
	return s.engine.Filters().Query
}

// IsActive reports whether a search narrows the view
func (s *Service) IsActive() bool {
	return s.Query() != ""
}

// MatchCount returns the number of visible entries
func (s *Service) MatchCount() int {
	return s.engine.MatchCount()
}

// Highlight returns the byte range of the query within text
func (s *Service) Highlight(text string) (start, end int, ok bool) {
	return logic.MatchRange(text, s.Query())
}
