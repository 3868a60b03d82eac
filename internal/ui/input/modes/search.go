package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"cmdwiki/internal/ui/input/types"
)

// SearchMode edits the search text. Every keystroke is applied live and
// leaving the mode keeps the text.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
