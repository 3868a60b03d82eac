package ui

import (
	"cmdwiki/internal/domain"
)

// copyResetMsg reports that an entry's copy indicator is due to reset. The
// token identifies the copy that scheduled it.
type copyResetMsg struct {
	key   domain.EntryKey
	token uint64
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// clearStatusMsg clears the status line
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
