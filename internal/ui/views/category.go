package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CategoryRenderer renders the category bar and section headers
type CategoryRenderer struct {
	styles *Styles
}

// NewCategoryRenderer creates a new category renderer
func NewCategoryRenderer(styles *Styles) *CategoryRenderer {
	return &CategoryRenderer{styles: styles}
}

// RenderBar renders one button per category, wrapped to width. The selected
// category is highlighted and the focused one underlined.
func (c *CategoryRenderer) RenderBar(names []string, selected string, hasSelection bool, focused, width int) string {
	if len(names) == 0 {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	var lines []string
	var line []string
	lineWidth := 0

	for i, name := range names {
		label := name
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, name)
		}

		style := c.styles.CategoryButton
		if hasSelection && name == selected {
			style = c.styles.CategorySelected
		}
		if i == focused {
			style = style.Inherit(c.styles.CategoryFocused)
		}
		button := style.Render(label)

		w := lipgloss.Width(button)
		if lineWidth > 0 && lineWidth+1+w > width {
			lines = append(lines, strings.Join(line, " "))
			line = nil
			lineWidth = 0
		}
		if lineWidth > 0 {
			lineWidth++
		}
		line = append(line, button)
		lineWidth += w
	}
	if len(line) > 0 {
		lines = append(lines, strings.Join(line, " "))
	}

	return strings.Join(lines, "\n")
}

// RenderSectionHeader renders a category heading in the entry list
func (c *CategoryRenderer) RenderSectionHeader(name string, count int, continued bool) string {
	header := c.styles.SectionTitle.Render(name) + " " + c.styles.SectionCount.Render(fmt.Sprintf("(%d)", count))
	if continued {
		header += c.styles.SectionCount.Render(" …")
	}
	return header
}
