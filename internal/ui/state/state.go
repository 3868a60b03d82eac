package state

// AppState contains the UI state that is not filter state. Filters live in
// the query service so that a reset is always applied as a whole.
type AppState struct {
	// Terminal
	Width  int
	Height int

	// Category bar
	FocusedCategory int // index into the catalog's category names

	// Popups
	ShowHelp         bool
	HelpScrollOffset int
	ShowInfo         bool
	InfoContent      string // rendered markdown of the focused entry
	InfoScrollOffset int

	// Display options
	ShowDescriptions bool

	// Status
	StatusMessage string
	InPagerMode   bool // an external pager owns the terminal
}

// NewAppState creates a new application state
func NewAppState(showDescriptions bool) *AppState {
	return &AppState{
		ShowDescriptions: showDescriptions,
	}
}

// FocusCategory moves the category focus by delta, wrapping around count
func (s *AppState) FocusCategory(delta, count int) {
	if count <= 0 {
		s.FocusedCategory = 0
		return
	}
	s.FocusedCategory = ((s.FocusedCategory+delta)%count + count) % count
}

// HasPopup reports whether a popup covers the main view
func (s *AppState) HasPopup() bool {
	return s.ShowHelp || s.ShowInfo
}

// ClosePopups hides every popup
func (s *AppState) ClosePopups() {
	s.ShowHelp = false
	s.HelpScrollOffset = 0
	s.ShowInfo = false
	s.InfoContent = ""
	s.InfoScrollOffset = 0
}

// ScrollPopup moves the visible popup's scroll offset by delta
func (s *AppState) ScrollPopup(delta int) {
	switch {
	case s.ShowInfo:
		s.InfoScrollOffset = max(0, s.InfoScrollOffset+delta)
	case s.ShowHelp:
		s.HelpScrollOffset = max(0, s.HelpScrollOffset+delta)
	}
}
