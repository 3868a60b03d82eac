package types

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds the normal mode bindings. It implements help.KeyMap for the
// footer and the help popup.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	Home         key.Binding
	End          key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding

	FocusNext      key.Binding
	FocusPrev      key.Binding
	ToggleCategory key.Binding
	PickCategory   key.Binding

	Search       key.Binding
	ClearSearch  key.Binding
	ResetFilters key.Binding

	Copy         key.Binding
	Info         key.Binding
	Descriptions key.Binding
	Help         key.Binding
	Quit         key.Binding
}

// DefaultKeyMap returns the built-in bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:       key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:     key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:         key.NewBinding(key.WithKeys("home"), key.WithHelp("gg/home", "first entry")),
		End:          key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last entry")),
		NextCategory: key.NewBinding(key.WithKeys("]", "J"), key.WithHelp("]", "next category")),
		PrevCategory: key.NewBinding(key.WithKeys("[", "K"), key.WithHelp("[", "previous category")),

		FocusNext:      key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "focus next category")),
		FocusPrev:      key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "focus previous category")),
		ToggleCategory: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle category")),
		PickCategory:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "toggle nth category")),

		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		ClearSearch:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear search")),
		ResetFilters: key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear filters")),

		Copy:         key.NewBinding(key.WithKeys("y", "c"), key.WithHelp("y", "copy command")),
		Info:         key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "details")),
		Descriptions: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "toggle descriptions")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp is shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.ToggleCategory, k.Copy, k.ResetFilters, k.Help, k.Quit}
}

// FullHelp is shown in the help popup and pager
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End, k.NextCategory, k.PrevCategory},
		{k.FocusNext, k.FocusPrev, k.ToggleCategory, k.PickCategory},
		{k.Search, k.ClearSearch, k.ResetFilters},
		{k.Copy, k.Info, k.Descriptions, k.Help, k.Quit},
	}
}

// FullHelpSections names the groups returned by FullHelp
func (k KeyMap) FullHelpSections() []string {
	return []string{"Navigation", "Categories", "Search & Filters", "Entries"}
}
