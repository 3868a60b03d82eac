package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"cmdwiki/internal/catalog"
	"cmdwiki/internal/config"
	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/ui/coordinator"
	"cmdwiki/internal/ui/input"
	inputtypes "cmdwiki/internal/ui/input/types"
	"cmdwiki/internal/ui/services/feedback"
	"cmdwiki/internal/ui/services/navigation"
	"cmdwiki/internal/ui/state"
	"cmdwiki/internal/ui/viewmodels"
	"cmdwiki/internal/ui/views"
)

const (
	// rows above and below the entry list (header, search, category bar, footer)
	layoutOverhead = 12
	// an entry card is at least a title and a command line
	minEntryLines  = 2
	popupPageLines = 10
	statusTimeout  = 3 * time.Second
	resetQueueSize = 64
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	logger *zap.Logger
	state  *state.AppState // centralized state

	categories []string

	// Handlers
	coordinator  *coordinator.Coordinator // filter, navigation and copy services
	renderer     *views.Renderer          // view renderer
	detail       *views.DetailRenderer    // markdown rendering for the info popup
	viewModel    *viewmodels.ViewModel    // view model for rendering
	inputHandler *input.Handler           // input handling
	helpOps      *HelpOps                 // ov pager

	// copy resets arrive from timer goroutines and are applied in Update
	resets chan copyResetMsg

	// Program reference for terminal management
	program *tea.Program
}

// Options holds the optional settings of a Model
type Options struct {
	Query     string             // initial search text
	Category  string             // initially selected category
	Scheduler feedback.Scheduler // copy reset timers; nil means wall clock
}

// NewModel creates a new UI model over a loaded catalog store
func NewModel(store *catalog.Store, cfg *config.Config, sink feedback.Sink, bus eventbus.EventBus, logger *zap.Logger, opts Options) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		logger:       logger,
		state:        state.NewAppState(cfg.UISettings.ShowDescriptions),
		categories:   store.CategoryNames(),
		renderer:     views.NewRenderer(),
		detail:       views.NewDetailRenderer(),
		inputHandler: input.New(),
		helpOps:      NewHelpOps(nil),
		resets:       make(chan copyResetMsg, resetQueueSize),
	}

	boardOpts := []feedback.Option{
		feedback.WithDelay(cfg.CopyResetDelay()),
		feedback.WithBus(bus),
		feedback.WithLogger(logger),
	}
	if opts.Scheduler != nil {
		boardOpts = append(boardOpts, feedback.WithScheduler(opts.Scheduler))
	}
	board := feedback.NewBoard(sink, m.queueReset, boardOpts...)

	m.coordinator = coordinator.NewCoordinator(store, board, bus, logger)
	m.viewModel = viewmodels.NewViewModel(m.state, m.coordinator, m.inputHandler, m.categories)

	if opts.Query != "" {
		m.coordinator.SetQuery(opts.Query)
	}
	if opts.Category != "" {
		m.selectCategory(opts.Category)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Coordinator exposes the services behind the model
func (m *Model) Coordinator() *coordinator.Coordinator {
	return m.coordinator
}

// queueReset runs on a timer goroutine and hands the reset to Update
func (m *Model) queueReset(key domain.EntryKey, token uint64) {
	m.resets <- copyResetMsg{key: key, token: token}
}

// waitForReset delivers the next queued copy reset
func (m *Model) waitForReset() tea.Cmd {
	return func() tea.Msg {
		return <-m.resets
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	// Will be updated on first WindowSizeMsg
	m.coordinator.SetViewportHeight(10)
	if m.state.StatusMessage != "" {
		return tea.Batch(m.waitForReset(), m.setStatus(m.state.StatusMessage))
	}
	return m.waitForReset()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		if m.state.HasPopup() {
			return m, m.handlePopupKey(msg)
		}

		ctx := m.inputContext()

		// Handle input through the handler
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}

		return m, tea.Batch(cmds...)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.state.InPagerMode {
		return ""
	}
	if m.state.Width == 0 {
		return "Loading..."
	}

	return m.renderer.Render(m.viewModel.BuildViewState())
}

func (m *Model) inputContext() *input.ModelContext {
	filters := m.coordinator.Filters()
	return &input.ModelContext{
		Cursor:        m.coordinator.Navigation.GetCursor(),
		Rows:          m.coordinator.View().EntryCount(),
		Categories:    len(m.categories),
		Focused:       m.state.FocusedCategory,
		Query:         filters.Query,
		FiltersActive: filters.Active(),
	}
}

// updateViewportHeight sets the page size from the terminal height
func (m *Model) updateViewportHeight() {
	rows := (m.state.Height - layoutOverhead) / minEntryLines
	if rows < 1 {
		rows = 1
	}
	m.coordinator.SetViewportHeight(rows)
}

// handlePopupKey scrolls or closes the visible popup
func (m *Model) handlePopupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return m.quit()
	case "esc", "q", "?", "i":
		m.state.ClosePopups()
	case "up", "k":
		m.state.ScrollPopup(-1)
	case "down", "j":
		m.state.ScrollPopup(1)
	case "pgup", "ctrl+u":
		m.state.ScrollPopup(-popupPageLines)
	case "pgdown", "ctrl+d":
		m.state.ScrollPopup(popupPageLines)
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.logger.Debug("processAction", zap.String("action", action.Type()))
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.coordinator.Navigation.Navigate(navigation.Direction(a.Direction))

	case inputtypes.FocusCategoryAction:
		m.state.FocusCategory(a.Delta, len(m.categories))

	case inputtypes.ToggleCategoryAction:
		index := a.Index
		if index < 0 {
			index = m.state.FocusedCategory
		}
		if index < 0 || index >= len(m.categories) {
			return nil
		}
		m.state.FocusedCategory = index
		m.coordinator.ToggleCategory(m.categories[index])

	case inputtypes.ClearSearchAction:
		m.coordinator.ClearSearch()

	case inputtypes.ResetFiltersAction:
		m.coordinator.ResetFilters()

	case inputtypes.CopyAction:
		m.coordinator.CopyCurrent()

	case inputtypes.ToggleInfoAction:
		m.showInfo()

	case inputtypes.ToggleDescriptionsAction:
		m.state.ShowDescriptions = !m.state.ShowDescriptions

	case inputtypes.ToggleHelpAction:
		if m.config.UISettings.HelpInPager && m.helpOps.Available() {
			return m.fetchHelpPager(m.helpContent())
		}
		m.state.ShowHelp = true
		m.state.HelpScrollOffset = 0

	case inputtypes.UpdateTextAction:
		m.coordinator.SetQuery(a.Text)

	case inputtypes.SubmitTextAction:
		m.coordinator.SetQuery(a.Text)

	case inputtypes.CancelTextAction:
		// leaving search mode keeps the query

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

func (m *Model) quit() tea.Cmd {
	m.coordinator.Close()
	return tea.Quit
}

// selectCategory selects name if it is not already selected
func (m *Model) selectCategory(name string) {
	for i, n := range m.categories {
		if n != name {
			continue
		}
		m.state.FocusedCategory = i
		if !m.coordinator.Selection.IsSelected(name) {
			m.coordinator.ToggleCategory(name)
		}
		return
	}
	m.logger.Warn("unknown category", zap.String("category", name))
	m.state.StatusMessage = fmt.Sprintf("Unknown category %q", name)
}

// showInfo opens the detail popup for the entry under the cursor
func (m *Model) showInfo() {
	row, ok := m.coordinator.CurrentRow()
	if !ok {
		return
	}

	width := m.state.Width - 12
	content, err := m.detail.Render(row.Category, row.Entry.Entry, width)
	if err != nil {
		m.logger.Debug("detail rendering failed", zap.Error(err))
		content = views.Markdown(row.Category, row.Entry.Entry)
	}

	m.state.ShowInfo = true
	m.state.InfoContent = content
	m.state.InfoScrollOffset = 0
}

func (m *Model) helpContent() string {
	keys := m.inputHandler.Keys()
	return m.renderer.RenderHelpContent(keys.FullHelp(), keys.FullHelpSections())
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.helpOps.ShowHelpInPager(helpContent)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return helpPagerMsg{err: err}
	}
}

func (m *Model) setStatus(message string) tea.Cmd {
	m.state.StatusMessage = message
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copyResetMsg:
		if !m.coordinator.Feedback.Expire(msg.key, msg.token) {
			m.logger.Debug("stale copy reset", zap.Stringer("key", msg.key), zap.Uint64("token", msg.token))
		}
		return m, m.waitForReset()

	case helpPagerMsg:
		if msg.err != nil {
			// Pager failed, log and fall back to popup
			m.logger.Warn("help pager failed", zap.Error(msg.err))
			m.state.ShowHelp = true
			m.state.HelpScrollOffset = 0
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}
