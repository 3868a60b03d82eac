package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end", "nextcategory", "prevcategory"
}

func (a NavigateAction) Type() string { return "navigate" }

// Category actions
type FocusCategoryAction struct {
	Delta int
}

func (a FocusCategoryAction) Type() string { return "focus_category" }

type ToggleCategoryAction struct {
	Index int // -1 for the focused category
}

func (a ToggleCategoryAction) Type() string { return "toggle_category" }

// Filter actions
type ClearSearchAction struct{}

func (a ClearSearchAction) Type() string { return "clear_search" }

type ResetFiltersAction struct{}

func (a ResetFiltersAction) Type() string { return "reset_filters" }

// Entry actions
type CopyAction struct{}

func (a CopyAction) Type() string { return "copy" }

type ToggleInfoAction struct{}

func (a ToggleInfoAction) Type() string { return "toggle_info" }

type ToggleDescriptionsAction struct{}

func (a ToggleDescriptionsAction) Type() string { return "toggle_descriptions" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data string // initial text for text modes
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
