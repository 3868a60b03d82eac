package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/ui/logic"
)

const (
	// EmptyMessage is shown when no entry survives filtering
	EmptyMessage = "No entries found matching your search."
	// BrowseMessage is shown when no search is active
	BrowseMessage = "Browse all entries below"
	// ClearFiltersLabel is the reset hint shown while a filter is active
	ClearFiltersLabel = "Clear filters"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width  int
	Height int

	Title    string
	Subtitle string

	// Search line
	SearchMode  bool
	SearchInput string // rendered text input while editing
	Query       string

	// Category bar
	Categories      []string
	Selection       domain.Selection
	FocusedCategory int
	FiltersActive   bool

	// Entry list
	View             domain.FilteredView
	Cursor           int
	ViewportOffset   int
	Copied           map[domain.EntryKey]bool
	ShowDescriptions bool

	// Popups
	ShowHelp         bool
	HelpScrollOffset int
	ShowInfo         bool
	InfoContent      string
	InfoScrollOffset int

	StatusMessage string
	HelpModel     help.Model
	Keys          help.KeyMap
	HelpGroups    [][]key.Binding
	HelpSections  []string
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	entryRender *EntryRenderer
	catRender   *CategoryRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		entryRender: NewEntryRenderer(styles),
		catRender:   NewCategoryRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowInfo && state.InfoContent != "" {
		return r.popupRender.RenderPopup(state.InfoContent, state.InfoScrollOffset, state.Width, state.Height, r.styles.InfoBox)
	}
	if state.ShowHelp {
		content := r.RenderHelpContent(state.HelpGroups, state.HelpSections)
		return r.popupRender.RenderPopup(content, state.HelpScrollOffset, state.Width, state.Height, r.styles.HelpBox)
	}

	innerWidth := state.Width - r.styles.Main.GetHorizontalFrameSize()
	if innerWidth <= 0 {
		innerWidth = 76
	}
	innerHeight := state.Height - r.styles.Main.GetVerticalFrameSize()
	if innerHeight <= 0 {
		innerHeight = 22
	}

	top := r.renderTop(state, innerWidth)
	footer := r.renderFooter(state, innerWidth)

	available := innerHeight - lipgloss.Height(top) - lipgloss.Height(footer) - 1
	if available < 3 {
		available = 3
	}

	var list string
	if state.View.EntryCount() == 0 {
		list = r.styles.Empty.Render(EmptyMessage)
	} else {
		list = r.renderEntryList(state, innerWidth, available)
	}

	content := &strings.Builder{}
	content.WriteString(top)
	content.WriteString("\n")
	content.WriteString(list)

	// push the footer to the bottom
	used := lipgloss.Height(content.String())
	if padding := innerHeight - used - lipgloss.Height(footer); padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(footer)

	return r.styles.Main.MaxHeight(state.Height).Render(content.String())
}

// renderTop renders the header, search line and category bar
func (r *Renderer) renderTop(state ViewState, width int) string {
	var b strings.Builder

	title := r.styles.Title.Render(state.Title)
	count := r.styles.Dim.Render(fmt.Sprintf("%d entries", state.View.EntryCount()))
	if gap := width - lipgloss.Width(title) - lipgloss.Width(count); gap > 0 {
		title += strings.Repeat(" ", gap) + count
	} else {
		title += "  " + count
	}
	b.WriteString(title)
	b.WriteString("\n")
	if state.Subtitle != "" {
		b.WriteString(r.styles.Subtitle.Render(state.Subtitle))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case state.SearchMode:
		b.WriteString(r.styles.SearchLabel.Render("Search: ") + state.SearchInput)
	case state.Query != "":
		b.WriteString(r.styles.SearchLabel.Render("Searching for: ") + r.styles.SearchQuery.Render(state.Query))
	default:
		b.WriteString(r.styles.SearchLabel.Render(BrowseMessage))
	}
	b.WriteString("\n\n")

	label := r.styles.BarLabel.Render("Filter by Category")
	if state.FiltersActive {
		label += "  " + r.styles.ClearHint.Render("[X] "+ClearFiltersLabel)
	}
	b.WriteString(label)
	b.WriteString("\n")
	selected, hasSelection := state.Selection.Name()
	b.WriteString(r.catRender.RenderBar(state.Categories, selected, hasSelection, state.FocusedCategory, width))
	b.WriteString("\n")

	return b.String()
}

func (r *Renderer) renderFooter(state ViewState, width int) string {
	var b strings.Builder
	if state.StatusMessage != "" {
		b.WriteString(r.styles.Status.Render(state.StatusMessage))
		b.WriteString("\n")
	}
	if state.Keys != nil {
		h := state.HelpModel
		h.Width = width
		b.WriteString(h.View(state.Keys))
	} else {
		b.WriteString(r.styles.Dim.Render("Press ? for help"))
	}
	return b.String()
}

// renderEntryList renders the entries from the viewport offset, moving the
// window forward when the cursor's card would not fit
func (r *Renderer) renderEntryList(state ViewState, width, height int) string {
	rows := logic.Flatten(state.View)
	cursor := min(max(state.Cursor, 0), len(rows)-1)

	start := min(max(state.ViewportOffset, 0), cursor)
	var lines []string
	var last int
	for {
		lines, last = r.layout(state, rows, start, width, height, cursor)
		if last >= cursor || start >= cursor {
			break
		}
		start++
	}

	return strings.Join(lines, "\n")
}

// layout fills height lines with rows from start and returns them together
// with the index of the last row drawn completely
func (r *Renderer) layout(state ViewState, rows []logic.Row, start, width, height, cursor int) ([]string, int) {
	budget := height
	var lines []string

	if start > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", start)))
		budget--
	}

	last := start - 1
	for i := start; i < len(rows); i++ {
		row := rows[i]
		var block []string

		if i == start || rows[i-1].CategoryIndex != row.CategoryIndex {
			if i != start {
				block = append(block, "")
			}
			cat := state.View[row.CategoryIndex]
			continued := i == start && row.Entry.Key != cat.Entries[0].Key
			block = append(block, r.catRender.RenderSectionHeader(cat.Name, len(cat.Entries), continued))
		}

		block = append(block, r.entryRender.RenderEntry(
			row.Entry,
			i == cursor,
			state.Copied[row.Entry.Key],
			state.ShowDescriptions,
			state.Query,
			width,
		)...)

		// keep a line for the bottom indicator unless this is the last row
		reserve := 0
		if i < len(rows)-1 {
			reserve = 1
		}
		if len(block)+reserve > budget && i > start {
			break
		}
		lines = append(lines, block...)
		budget -= len(block)
		last = i
		if budget <= reserve {
			break
		}
	}

	if below := len(rows) - 1 - last; below > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", below)))
	}
	return lines, last
}
