package selection

import (
	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
)

// Service is the category toggle controller
type Service struct {
	engine  Engine
	filters func() domain.Filters
	bus     eventbus.EventBus
}

// NewService creates a selection service. filters reads the engine's current
// state; bus may be nil.
func NewService(engine Engine, filters func() domain.Filters, bus eventbus.EventBus) *Service {
	return &Service{
		engine:  engine,
		filters: filters,
		bus:     bus,
	}
}

// OnCategoryClicked toggles name: clicking the selected category deselects
// it, any other name replaces the selection
func (s *Service) OnCategoryClicked(name string) Transition {
	previous := s.filters().Selection

	var t Transition
	if previous.Is(name) {
		if s.engine.Deselect() {
			t = Deselected
		}
	} else if s.engine.Select(name) {
		t = Selected
	}

	if t != Unchanged {
		s.publish(previous)
	}
	return t
}

// Selected returns the selected category, if any
func (s *Service) Selected() (string, bool) {
	return s.filters().Selection.Name()
}

// IsSelected reports whether name is the selected category
func (s *Service) IsSelected(name string) bool {
	return s.filters().Selection.Is(name)
}

// Clear deselects without touching the search
func (s *Service) Clear() {
	previous := s.filters().Selection
	if s.engine.Deselect() {
		s.publish(previous)
	}
}

// Reset clears search and selection together
func (s *Service) Reset() {
	s.engine.Reset()
}

func (s *Service) publish(previous domain.Selection) {
	if s.bus == nil {
		return
	}
	prevName, _ := previous.Name()
	current, selected := s.filters().Selection.Name()
	s.bus.Publish(eventbus.SelectionChangedEvent{
		Previous: prevName,
		Current:  current,
		Selected: selected,
	})
}
