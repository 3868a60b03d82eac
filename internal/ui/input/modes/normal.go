package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cmdwiki/internal/ui/input/types"
)

type NormalMode struct {
	keys        types.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.String() == "g" {
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top
			m.lastKeyWasG = false
			return nav("home"), true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	m.lastKeyWasG = false

	k := m.keys
	switch {
	case msg.Type == tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Quit):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.Up):
		return nav("up"), true
	case key.Matches(msg, k.Down):
		return nav("down"), true
	case key.Matches(msg, k.PageUp):
		return nav("pageup"), true
	case key.Matches(msg, k.PageDown):
		return nav("pagedown"), true
	case key.Matches(msg, k.Home):
		return nav("home"), true
	case key.Matches(msg, k.End):
		return nav("end"), true
	case key.Matches(msg, k.NextCategory):
		return nav("nextcategory"), true
	case key.Matches(msg, k.PrevCategory):
		return nav("prevcategory"), true

	case key.Matches(msg, k.FocusNext):
		return []types.Action{types.FocusCategoryAction{Delta: 1}}, true
	case key.Matches(msg, k.FocusPrev):
		return []types.Action{types.FocusCategoryAction{Delta: -1}}, true
	case key.Matches(msg, k.ToggleCategory):
		if ctx.CategoryCount() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleCategoryAction{Index: -1}}, true
	case key.Matches(msg, k.PickCategory):
		index := int(msg.Runes[0] - '1')
		if index >= ctx.CategoryCount() {
			return nil, true
		}
		return []types.Action{types.ToggleCategoryAction{Index: index}}, true

	case key.Matches(msg, k.Search):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch, Data: ctx.SearchQuery()}}, true
	case key.Matches(msg, k.ClearSearch):
		if ctx.SearchQuery() == "" {
			return nil, true
		}
		return []types.Action{types.ClearSearchAction{}}, true
	case key.Matches(msg, k.ResetFilters):
		if !ctx.HasActiveFilters() {
			return nil, true
		}
		return []types.Action{types.ResetFiltersAction{}}, true

	case key.Matches(msg, k.Copy):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.CopyAction{}}, true
	case key.Matches(msg, k.Info):
		if ctx.TotalItems() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleInfoAction{}}, true
	case key.Matches(msg, k.Descriptions):
		return []types.Action{types.ToggleDescriptionsAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

func nav(direction string) []types.Action {
	return []types.Action{types.NavigateAction{Direction: direction}}
}
