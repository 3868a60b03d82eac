package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/ui/coordinator"
	"cmdwiki/internal/ui/input"
	"cmdwiki/internal/ui/input/types"
	"cmdwiki/internal/ui/services/feedback"
	"cmdwiki/internal/ui/state"
	"cmdwiki/internal/ui/views"
)

const (
	appTitle    = "cmdwiki"
	appSubtitle = "Commands, concepts and resources at a glance"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state       *state.AppState
	coordinator *coordinator.Coordinator
	input       *input.Handler
	categories  []string
	help        help.Model
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, coord *coordinator.Coordinator, handler *input.Handler, categories []string) *ViewModel {
	return &ViewModel{
		state:       appState,
		coordinator: coord,
		input:       handler,
		categories:  categories,
		help:        help.New(),
	}
}

// SetHelp sets the help model
func (vm *ViewModel) SetHelp(helpModel help.Model) {
	vm.help = helpModel
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	filters := vm.coordinator.Filters()
	view := vm.coordinator.View()
	keys := vm.input.Keys()

	copied := make(map[domain.EntryKey]bool)
	for _, key := range view.Keys() {
		if vm.coordinator.CopyState(key) == feedback.Copied {
			copied[key] = true
		}
	}

	searchMode := vm.input.CurrentMode() == types.ModeSearch
	searchInput := ""
	if ti := vm.input.TextInput(); searchMode && ti != nil {
		searchInput = ti.View()
	}

	return views.ViewState{
		Width:            vm.state.Width,
		Height:           vm.state.Height,
		Title:            appTitle,
		Subtitle:         appSubtitle,
		SearchMode:       searchMode,
		SearchInput:      searchInput,
		Query:            filters.Query,
		Categories:       vm.categories,
		Selection:        filters.Selection,
		FocusedCategory:  vm.state.FocusedCategory,
		FiltersActive:    filters.Active(),
		View:             view,
		Cursor:           vm.coordinator.Navigation.GetCursor(),
		ViewportOffset:   vm.coordinator.Navigation.GetViewportOffset(),
		Copied:           copied,
		ShowDescriptions: vm.state.ShowDescriptions,
		ShowHelp:         vm.state.ShowHelp,
		HelpScrollOffset: vm.state.HelpScrollOffset,
		ShowInfo:         vm.state.ShowInfo,
		InfoContent:      vm.state.InfoContent,
		InfoScrollOffset: vm.state.InfoScrollOffset,
		StatusMessage:    vm.state.StatusMessage,
		HelpModel:        vm.help,
		Keys:             keys,
		HelpGroups:       keys.FullHelp(),
		HelpSections:     keys.FullHelpSections(),
	}
}
