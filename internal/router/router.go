package router

import (
	"errors"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/eventbus"
)

// ErrUnknownRoute is returned for paths without a registered page
var ErrUnknownRoute = errors.New("unknown route")

// Page is a screen the router can show
type Page interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Page, tea.Cmd)
	View() string
	Title() string
	// CapturesInput reports whether printable keys go to a text field
	CapturesInput() bool
}

// Factory builds a page on first use
type Factory func() Page

// Navigator is the view of the router pages depend on
type Navigator interface {
	Push(path string) error
	Prefetch(path string) error
}

// Router maps paths to pages and tracks the current one
type Router struct {
	bus       eventbus.EventBus
	factories map[string]Factory
	cache     map[string]Page
	current   string
}

// New creates an empty router. bus may be nil.
func New(bus eventbus.EventBus) *Router {
	return &Router{
		bus:       bus,
		factories: make(map[string]Factory),
		cache:     make(map[string]Page),
	}
}

// Register binds path to a page factory
func (r *Router) Register(path string, factory Factory) {
	r.factories[path] = factory
}

// Prefetch builds the page for path ahead of navigation
func (r *Router) Prefetch(path string) error {
	_, cached := r.cache[path]
	if _, err := r.page(path); err != nil {
		return err
	}
	r.publish(eventbus.RoutePrefetchedEvent{Path: path, Cached: cached})
	return nil
}

// Push makes path the current route. The page it leaves is dropped from the
// cache so returning to it later starts fresh.
func (r *Router) Push(path string) error {
	if _, err := r.page(path); err != nil {
		return err
	}
	from := r.current
	if from == path {
		return nil
	}
	if from != "" {
		delete(r.cache, from)
	}
	r.current = path
	log.Printf("Router: %q -> %q", from, path)
	r.publish(eventbus.RouteChangedEvent{From: from, To: path})
	return nil
}

// Current returns the current page, or nil before the first Push
func (r *Router) Current() Page {
	return r.cache[r.current]
}

// CurrentPath returns the current route
func (r *Router) CurrentPath() string {
	return r.current
}

// Replace stores the updated value of the current page
func (r *Router) Replace(p Page) {
	if r.current != "" {
		r.cache[r.current] = p
	}
}

func (r *Router) page(path string) (Page, error) {
	if p, ok := r.cache[path]; ok {
		return p, nil
	}
	factory, ok := r.factories[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownRoute, path)
	}
	p := factory()
	r.cache[path] = p
	return p, nil
}

func (r *Router) publish(e eventbus.DomainEvent) {
	if r.bus != nil {
		r.bus.Publish(e)
	}
}
