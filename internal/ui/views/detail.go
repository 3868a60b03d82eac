package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"cmdwiki/internal/domain"
)

// DetailRenderer renders an entry as markdown for the detail popup
type DetailRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

// NewDetailRenderer creates a detail renderer using a fixed glamour style,
// so rendering never queries the terminal while the TUI owns it
func NewDetailRenderer() *DetailRenderer {
	return &DetailRenderer{style: styles.DarkStyle}
}

// Markdown returns the markdown document for an entry
func Markdown(category string, e domain.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", e.Title)
	fmt.Fprintf(&b, "*%s*\n\n", category)
	if e.HasDescription() {
		b.WriteString(e.DescriptionText())
		b.WriteString("\n\n")
	}
	b.WriteString("```sh\n")
	b.WriteString(e.Command)
	b.WriteString("\n```\n")
	return b.String()
}

// Render renders the entry wrapped to width
func (d *DetailRenderer) Render(category string, e domain.Entry, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	if d.renderer == nil || d.width != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(d.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		d.renderer = r
		d.width = width
	}

	out, err := d.renderer.Render(Markdown(category, e))
	if err != nil {
		return "", fmt.Errorf("failed to render entry: %w", err)
	}
	return strings.Trim(out, "\n"), nil
}
