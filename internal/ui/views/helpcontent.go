package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/mattn/go-runewidth"
)

// RenderHelpContent renders the full key reference, one section per group
func (r *Renderer) RenderHelpContent(groups [][]key.Binding, sections []string) string {
	var help strings.Builder

	help.WriteString(r.styles.HelpTitle.Render("cmdwiki Help"))
	help.WriteString("\n")

	keyWidth := 0
	for _, group := range groups {
		for _, b := range group {
			keyWidth = max(keyWidth, runewidth.StringWidth(b.Help().Key))
		}
	}

	for i, group := range groups {
		if i < len(sections) {
			help.WriteString(r.styles.HelpSection.Render(sections[i]))
			help.WriteString("\n")
		}
		for _, b := range group {
			h := b.Help()
			pad := strings.Repeat(" ", keyWidth-runewidth.StringWidth(h.Key))
			fmt.Fprintf(&help, "  %s%s  %s\n", r.styles.HelpKey.Render(h.Key), pad, r.styles.HelpDesc.Render(h.Desc))
		}
	}

	help.WriteString("\n")
	help.WriteString(r.styles.Dim.Render("Press ? or esc to close"))
	return help.String()
}
