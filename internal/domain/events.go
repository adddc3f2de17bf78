package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventRouteChanged    EventType = "RouteChanged"
	EventRoutePrefetched EventType = "RoutePrefetched"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventError           EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchStartedEvent is emitted when a non-blank query is submitted
type SearchStartedEvent struct {
	RequestID string
	Query     string
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent is emitted when a fetch resolves
type SearchCompletedEvent struct {
	RequestID string
	Query     string
	Count     int
	NotFound  bool
	Err       error
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// RouteChangedEvent is emitted when the router pushes a new page
type RouteChangedEvent struct {
	From string
	To   string
}

func (e RouteChangedEvent) Type() EventType { return EventRouteChanged }

// RoutePrefetchedEvent is emitted when a page is built ahead of navigation
type RoutePrefetchedEvent struct {
	Path   string
	Cached bool // page was already built
}

func (e RoutePrefetchedEvent) Type() EventType { return EventRoutePrefetched }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
