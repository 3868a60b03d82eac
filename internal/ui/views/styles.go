package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	SearchLabel lipgloss.Style
	SearchQuery lipgloss.Style

	BarLabel         lipgloss.Style
	CategoryButton   lipgloss.Style
	CategorySelected lipgloss.Style
	CategoryFocused  lipgloss.Style
	ClearHint        lipgloss.Style

	SectionTitle lipgloss.Style
	SectionCount lipgloss.Style
	EntryTitle   lipgloss.Style
	Cursor       lipgloss.Style
	Description  lipgloss.Style
	Command      lipgloss.Style
	CopyIdle     lipgloss.Style
	CopyDone     lipgloss.Style
	Empty        lipgloss.Style

	InfoBox   lipgloss.Style
	HelpBox   lipgloss.Style
	Main      lipgloss.Style
	Scroll    lipgloss.Style
	Highlight lipgloss.Style
	Backdrop  lipgloss.Color

	HelpTitle   lipgloss.Style
	HelpSection lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:    lipgloss.NewStyle().Faint(true).Italic(true),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		SearchLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		SearchQuery: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),

		BarLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		CategoryButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1),
		CategorySelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("33")).
			Padding(0, 1),
		CategoryFocused: lipgloss.NewStyle().Underline(true),
		ClearHint:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red

		SectionTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		SectionCount: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		EntryTitle:   lipgloss.NewStyle().Bold(true),
		Cursor:       lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Description:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Command:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		CopyIdle:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		CopyDone:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		Empty:        lipgloss.NewStyle().Faint(true).Italic(true),

		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Main:      lipgloss.NewStyle().Padding(1, 2),
		Scroll:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Backdrop:  lipgloss.Color("236"),

		HelpTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		HelpSection: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")).
			MarginTop(1),
		HelpKey:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		HelpDesc: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
