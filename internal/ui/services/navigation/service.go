package navigation

import (
	"cmdwiki/internal/domain"
	"cmdwiki/internal/ui/logic"
)

// Service moves the cursor over the entry rows of the filtered view
type Service struct {
	state  *State
	rowsFn func() []logic.Row
}

// NewService creates a navigation service reading rows from rowsFn
func NewService(rowsFn func() []logic.Row) *Service {
	return &Service{
		state: &State{
			ViewportHeight: 10, // updated on the first resize
		},
		rowsFn: rowsFn,
	}
}

// GetCursor returns current cursor position
func (s *Service) GetCursor() int {
	return s.state.Cursor
}

// GetViewportOffset returns the first visible row
func (s *Service) GetViewportOffset() int {
	return s.state.ViewportOffset
}

// GetViewportHeight returns how many rows fit on screen
func (s *Service) GetViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight updates how many rows fit on screen
func (s *Service) SetViewportHeight(rows int) {
	if rows < 1 {
		rows = 1
	}
	s.state.ViewportHeight = rows
	s.ensureVisible()
}

// Current returns the row under the cursor
func (s *Service) Current() (logic.Row, bool) {
	rows := s.rowsFn()
	if s.state.Cursor < 0 || s.state.Cursor >= len(rows) {
		return logic.Row{}, false
	}
	return rows[s.state.Cursor], true
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	rows := s.rowsFn()
	if len(rows) == 0 {
		s.moveToStart()
		return
	}

	switch direction {
	case DirectionUp:
		s.state.Cursor--
	case DirectionDown:
		s.state.Cursor++
	case DirectionPageUp:
		s.state.Cursor -= s.pageSize()
	case DirectionPageDown:
		s.state.Cursor += s.pageSize()
	case DirectionHome:
		s.moveToStart()
		return
	case DirectionEnd:
		s.state.Cursor = len(rows) - 1
	case DirectionNextCategory:
		s.state.Cursor = logic.NextCategoryStart(rows, s.state.Cursor)
	case DirectionPrevCategory:
		s.state.Cursor = logic.PreviousCategoryStart(rows, s.state.Cursor)
	}
	s.state.Cursor = clamp(s.state.Cursor, len(rows))
	s.ensureVisible()
}

// MoveToIndex moves cursor to specific index
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = clamp(index, len(s.rowsFn()))
	s.ensureVisible()
}

// Follow keeps the cursor on key after the view changed, or clamps it
// when the entry is no longer visible
func (s *Service) Follow(key domain.EntryKey, hadKey bool) {
	rows := s.rowsFn()
	if hadKey {
		if idx := logic.IndexOfKey(rows, key); idx >= 0 {
			s.state.Cursor = idx
			s.ensureVisible()
			return
		}
	}
	s.state.Cursor = clamp(s.state.Cursor, len(rows))
	s.ensureVisible()
}

func (s *Service) moveToStart() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

func (s *Service) pageSize() int {
	if s.state.ViewportHeight > 1 {
		return s.state.ViewportHeight - 1
	}
	return 1
}

func clamp(index, count int) int {
	if index >= count {
		index = count - 1
	}
	if index < 0 {
		index = 0
	}
	return index
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
	if s.state.ViewportOffset < 0 {
		s.state.ViewportOffset = 0
	}
}
