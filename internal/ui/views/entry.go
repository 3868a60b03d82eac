package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/ui/logic"
)

const (
	copyLabel   = "Copy"
	copiedLabel = "✓ Copied!"
	indent      = "    "
)

// EntryRenderer renders entry cards
type EntryRenderer struct {
	styles *Styles
}

// NewEntryRenderer creates a new entry renderer
func NewEntryRenderer(styles *Styles) *EntryRenderer {
	return &EntryRenderer{styles: styles}
}

// EntryLines returns how many lines RenderEntry produces for e
func (r *EntryRenderer) EntryLines(e domain.Entry, showDescription bool) int {
	n := 1 + strings.Count(e.Command, "\n") + 1
	if showDescription && e.HasDescription() {
		n++
	}
	return n
}

// RenderEntry renders one entry card: the title line with its copy
// indicator, the optional description and the command
func (r *EntryRenderer) RenderEntry(e domain.ViewEntry, isCursor, copied, showDescription bool, query string, width int) []string {
	if width <= 0 {
		width = 80
	}

	marker := "  "
	if isCursor {
		marker = "▸ "
	}

	label, labelStyle := copyLabel, r.styles.CopyIdle
	if copied {
		label, labelStyle = copiedLabel, r.styles.CopyDone
	}
	labelWidth := runewidth.StringWidth(label)

	titleWidth := width - runewidth.StringWidth(marker) - labelWidth - 2
	title := fit(e.Entry.Title, titleWidth)
	gap := width - runewidth.StringWidth(marker) - runewidth.StringWidth(title) - labelWidth
	if gap < 1 {
		gap = 1
	}

	titleLine := marker +
		r.highlight(title, query, r.styles.EntryTitle) +
		strings.Repeat(" ", gap) +
		labelStyle.Render(label)
	if isCursor {
		titleLine = r.styles.Cursor.Render(titleLine)
	}

	lines := []string{titleLine}

	if showDescription && e.Entry.HasDescription() {
		desc := fit(e.Entry.DescriptionText(), width-len(indent))
		lines = append(lines, indent+r.highlight(desc, query, r.styles.Description))
	}

	for _, cmdLine := range strings.Split(e.Entry.Command, "\n") {
		cmdLine = fit(cmdLine, width-len(indent))
		lines = append(lines, indent+r.highlight(cmdLine, query, r.styles.Command))
	}

	return lines
}

// highlight renders text in base with the first match of query emphasised
func (r *EntryRenderer) highlight(text, query string, base lipgloss.Style) string {
	start, end, ok := logic.MatchRange(text, query)
	if !ok {
		return base.Render(text)
	}
	var b strings.Builder
	if start > 0 {
		b.WriteString(base.Render(text[:start]))
	}
	b.WriteString(r.styles.Highlight.Render(text[start:end]))
	if end < len(text) {
		b.WriteString(base.Render(text[end:]))
	}
	return b.String()
}

// fit truncates s to w terminal cells
func fit(s string, w int) string {
	if w <= 1 {
		return ""
	}
	s = strings.ReplaceAll(s, "\t", "    ")
	if runewidth.StringWidth(s) <= w {
		return s
	}
	return runewidth.Truncate(s, w, "…")
}
