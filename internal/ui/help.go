package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// HelpOps shows the full help in the ov pager
type HelpOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
	run     func(content string) error
}

// NewHelpOps creates a new help operations instance
func NewHelpOps(program *tea.Program) *HelpOps {
	h := &HelpOps{program: program}
	h.run = runPager
	return h
}

// SetProgram sets the program whose terminal the pager borrows
func (h *HelpOps) SetProgram(p *tea.Program) {
	h.program = p
}

// Available reports whether the pager can take over the terminal
func (h *HelpOps) Available() bool {
	return h.program != nil
}

// ShowHelpInPager shows help content using ov pager
func (h *HelpOps) ShowHelpInPager(helpContent string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	return h.run(helpContent)
}

func runPager(content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	root.SetConfig(pagerConfig())

	return root.Run()
}

// pagerConfig keeps ov from writing the document back to the screen on exit
// and lets q or escape close it
func pagerConfig() oviewer.Config {
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false

	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["exit"] = []string{"Escape", "q"}

	return config
}
