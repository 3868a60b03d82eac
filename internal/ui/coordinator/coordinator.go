package coordinator

import (
	"go.uber.org/zap"

	"cmdwiki/internal/domain"
	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/ui/logic"
	"cmdwiki/internal/ui/services/feedback"
	"cmdwiki/internal/ui/services/navigation"
	"cmdwiki/internal/ui/services/query"
	"cmdwiki/internal/ui/services/search"
	"cmdwiki/internal/ui/services/selection"
)

// Coordinator manages all UI services and their interactions
type Coordinator struct {
	// Services
	Query      *query.Service
	Search     *search.Service
	Selection  *selection.Service
	Navigation *navigation.Service
	Feedback   *feedback.Board

	// Dependencies
	bus    eventbus.EventBus
	logger *zap.Logger
	unsubs []func()
}

// NewCoordinator creates a new coordinator with all services. bus and logger
// may be nil.
func NewCoordinator(catalog query.CatalogSource, board *feedback.Board, bus eventbus.EventBus, logger *zap.Logger) *Coordinator {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine := query.NewService(catalog, bus)
	c := &Coordinator{
		Query:     engine,
		Search:    search.NewService(engine, bus),
		Selection: selection.NewService(engine, engine.Filters, bus),
		Feedback:  board,
		bus:       bus,
		logger:    logger,
	}
	c.Navigation = navigation.NewService(engine.Rows)

	c.subscribeToEvents()

	return c
}

// subscribeToEvents logs filter changes. Handlers run on the bus goroutine
// and only observe.
func (c *Coordinator) subscribeToEvents() {
	if c.bus == nil {
		return
	}
	c.unsubs = append(c.unsubs,
		c.bus.Subscribe(eventbus.EventSearchChanged, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SearchChangedEvent)
			c.logger.Debug("search changed", zap.String("query", ev.Query), zap.Int("matches", ev.Matches))
		}),
		c.bus.Subscribe(eventbus.EventSelectionChanged, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.SelectionChangedEvent)
			c.logger.Debug("selection changed",
				zap.String("previous", ev.Previous),
				zap.String("current", ev.Current),
				zap.Bool("selected", ev.Selected))
		}),
		c.bus.Subscribe(eventbus.EventFiltersReset, func(eventbus.DomainEvent) {
			c.logger.Debug("filters reset")
		}),
	)
}

// Close drops the event subscriptions and cancels pending copy resets
func (c *Coordinator) Close() {
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	if c.Feedback != nil {
		c.Feedback.DestroyAll()
	}
}

// Filters returns the current filter state
func (c *Coordinator) Filters() domain.Filters {
	return c.Query.Filters()
}

// View returns the current filtered view
func (c *Coordinator) View() domain.FilteredView {
	return c.Query.View()
}

// SetQuery updates the search text live
func (c *Coordinator) SetQuery(q string) {
	c.change(func() { c.Search.SetQuery(q) })
}

// ClearSearch empties the search, keeping the selection
func (c *Coordinator) ClearSearch() {
	c.change(c.Search.Clear)
}

// ToggleCategory applies a category click
func (c *Coordinator) ToggleCategory(name string) selection.Transition {
	var t selection.Transition
	c.change(func() { t = c.Selection.OnCategoryClicked(name) })
	return t
}

// ResetFilters clears search and selection together
func (c *Coordinator) ResetFilters() {
	c.change(c.Selection.Reset)
}

// change runs a filter transition, then keeps the cursor on the same entry
// and destroys copy indicators of entries that left the view
func (c *Coordinator) change(apply func()) {
	before, hadRow := c.Navigation.Current()
	apply()
	c.Navigation.Follow(before.Entry.Key, hadRow)
	if c.Feedback != nil {
		c.Feedback.Reconcile(c.Query.View().Keys())
	}
}

// CurrentRow returns the row under the cursor
func (c *Coordinator) CurrentRow() (logic.Row, bool) {
	return c.Navigation.Current()
}

// CopyCurrent copies the command of the entry under the cursor
func (c *Coordinator) CopyCurrent() (domain.EntryKey, bool) {
	row, ok := c.Navigation.Current()
	if !ok || c.Feedback == nil {
		return domain.EntryKey{}, false
	}
	c.Feedback.RequestCopy(row.Entry.Key, row.Entry.Entry.Command)
	return row.Entry.Key, true
}

// CopyState returns the copy indicator state of key
func (c *Coordinator) CopyState(key domain.EntryKey) feedback.State {
	if c.Feedback == nil {
		return feedback.Idle
	}
	return c.Feedback.State(key)
}

// SetViewportHeight updates viewport height across services
func (c *Coordinator) SetViewportHeight(rows int) {
	c.Navigation.SetViewportHeight(rows)
}
