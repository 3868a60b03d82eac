package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopup centres the popup on a dimmed backdrop. Content taller than
// the screen is scrolled by scrollOffset with indicators at the edges.
func (pr *PopupRenderer) RenderPopup(content string, scrollOffset, width, height int, popupStyle lipgloss.Style) string {
	if width <= 0 || height <= 0 {
		return popupStyle.Render(content)
	}

	frameH := popupStyle.GetVerticalFrameSize()
	visible := height - frameH - 2
	if visible < 3 {
		visible = 3
	}
	content = pr.scroll(content, scrollOffset, visible)

	maxW := width - popupStyle.GetHorizontalFrameSize() - 4
	if maxW > 0 && lipgloss.Width(content) > maxW {
		content = lipgloss.NewStyle().MaxWidth(maxW).Render(content)
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		popupStyle.Render(content),
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(pr.styles.Backdrop))
}

// ClampScroll limits scrollOffset for content shown in height lines
func ClampScroll(content string, scrollOffset, visible int) int {
	total := strings.Count(content, "\n") + 1
	maxOffset := total - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if scrollOffset > maxOffset {
		scrollOffset = maxOffset
	}
	if scrollOffset < 0 {
		scrollOffset = 0
	}
	return scrollOffset
}

func (pr *PopupRenderer) scroll(content string, scrollOffset, visible int) string {
	lines := strings.Split(content, "\n")
	if len(lines) <= visible {
		return content
	}

	scrollOffset = ClampScroll(content, scrollOffset, visible)
	end := scrollOffset + visible
	window := append([]string(nil), lines[scrollOffset:end]...)

	if scrollOffset > 0 {
		window[0] = pr.styles.Scroll.Render("↑ (more above)")
	}
	if end < len(lines) {
		window[len(window)-1] = pr.styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(window, "\n")
}
