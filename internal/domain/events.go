package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded       EventType = "CatalogLoaded"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventSearchChanged       EventType = "SearchChanged"
	EventSelectionChanged    EventType = "SelectionChanged"
	EventFiltersReset        EventType = "FiltersReset"
	EventEntryCopied         EventType = "EntryCopied"
	EventCopyFeedbackExpired EventType = "CopyFeedbackExpired"
	EventError               EventType = "Error"
	EventAppReady            EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the catalog store has its snapshot
type CatalogLoadedEvent struct {
	Categories int
	Entries    int
	Version    uint64
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	CatalogPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// SearchChangedEvent is emitted when the search query changes
type SearchChangedEvent struct {
	Query   string
	Matches int // entries visible after the change
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// SelectionChangedEvent is emitted when the selected category changes
type SelectionChangedEvent struct {
	Previous string
	Current  string
	Selected bool // false when the change deselected
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// FiltersResetEvent is emitted once per reset, after both filters are cleared
type FiltersResetEvent struct{}

func (e FiltersResetEvent) Type() EventType { return EventFiltersReset }

// EntryCopiedEvent is emitted when a copy is requested for an entry
type EntryCopiedEvent struct {
	Key EntryKey
}

func (e EntryCopiedEvent) Type() EventType { return EventEntryCopied }

// CopyFeedbackExpiredEvent is emitted when a copied indicator returns to idle
type CopyFeedbackExpiredEvent struct {
	Key EntryKey
}

func (e CopyFeedbackExpiredEvent) Type() EventType { return EventCopyFeedbackExpired }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
