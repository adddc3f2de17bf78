package search

import (
	"context"
	"errors"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"reposearch/internal/domain"
	"reposearch/internal/eventbus"
)

// Fetcher looks up the repositories for a query. Returning domain.ErrNotFound,
// any other error, or no items all show as not found.
type Fetcher interface {
	FetchRepositories(ctx context.Context, query string) ([]domain.Repository, error)
}

// FetcherFunc adapts a function to Fetcher
type FetcherFunc func(ctx context.Context, query string) ([]domain.Repository, error)

func (f FetcherFunc) FetchRepositories(ctx context.Context, query string) ([]domain.Repository, error) {
	return f(ctx, query)
}

// ResolvedMsg carries the outcome of a fetch back to the event loop
type ResolvedMsg struct {
	RequestID uuid.UUID
	Query     string
	Items     []domain.Repository
	Err       error
}

// Option configures a Controller
type Option func(*Controller)

// WithLoadingOverride forces the reported loading state
func WithLoadingOverride(loading bool) Option {
	return func(c *Controller) { c.loading.Override(loading) }
}

// WithInitialResults seeds the result set shown before the first search
func WithInitialResults(r ResultSet) Option {
	return func(c *Controller) { c.results = r }
}

// WithTimeout bounds each fetch. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Controller) { c.timeout = d }
}

// WithEventBus publishes search lifecycle events on bus
func WithEventBus(bus eventbus.EventBus) Option {
	return func(c *Controller) { c.bus = bus }
}

// Controller drives the search form: Idle -> Loading -> ShowingResults or
// ShowingNotFound. All methods must be called from the event loop.
type Controller struct {
	fetcher Fetcher
	bus     eventbus.EventBus
	timeout time.Duration

	query   Query
	loading LoadingFlag
	results ResultSet
	pending uuid.UUID
}

// NewController creates a controller around fetcher
func NewController(fetcher Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher: fetcher,
		results: EmptyResults(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetQuery records the current input text
func (c *Controller) SetQuery(text string) {
	c.query.Set(text)
}

// Query returns the current input text
func (c *Controller) Query() string {
	return c.query.String()
}

// Loading reports the loading state the view should render
func (c *Controller) Loading() bool {
	return c.loading.IsLoading()
}

// Results returns the outcome of the last completed search
func (c *Controller) Results() ResultSet {
	return c.results
}

// OverrideLoading forces the reported loading state
func (c *Controller) OverrideLoading(v bool) {
	c.loading.Override(v)
}

// ClearLoadingOverride returns the loading state to the controller
func (c *Controller) ClearLoadingOverride() {
	c.loading.ClearOverride()
}

// Submit sets the query and starts a search. A blank query or a search
// already in flight is a no-op and returns nil. Otherwise the returned command
// calls the fetcher once and yields a ResolvedMsg for Resolve.
func (c *Controller) Submit(ctx context.Context, query string) tea.Cmd {
	c.query.Set(query)
	if c.query.IsBlank() {
		return nil
	}
	if c.loading.InFlight() {
		log.Printf("Search: ignoring submit of %q, request %s still in flight", c.query.Trimmed(), c.pending)
		return nil
	}

	id := uuid.New()
	q := c.query.Trimmed()
	c.pending = id
	c.loading.Set(true)
	c.results = EmptyResults()
	c.publish(eventbus.SearchStartedEvent{RequestID: id.String(), Query: q})

	fetcher := c.fetcher
	timeout := c.timeout
	return func() tea.Msg {
		fetchCtx := ctx
		if timeout > 0 {
			var cancel context.CancelFunc
			fetchCtx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		items, err := fetcher.FetchRepositories(fetchCtx, q)
		return ResolvedMsg{RequestID: id, Query: q, Items: items, Err: err}
	}
}

// Resolve applies a fetch outcome. It reports false when msg does not belong
// to the outstanding request.
func (c *Controller) Resolve(msg ResolvedMsg) bool {
	if !c.loading.InFlight() || msg.RequestID != c.pending {
		log.Printf("Search: dropping stale result for %q (%s)", msg.Query, msg.RequestID)
		return false
	}

	if msg.Err != nil {
		if !errors.Is(msg.Err, domain.ErrNotFound) {
			log.Printf("Search: fetch for %q failed: %v", msg.Query, msg.Err)
		}
		c.results = NotFoundResults()
	} else {
		c.results = ListResults(msg.Items)
	}
	c.loading.Set(false)
	c.pending = uuid.Nil

	c.publish(eventbus.SearchCompletedEvent{
		RequestID: msg.RequestID.String(),
		Query:     msg.Query,
		Count:     len(c.results.Items),
		NotFound:  c.results.IsNotFound(),
		Err:       msg.Err,
	})
	return true
}

func (c *Controller) publish(e eventbus.DomainEvent) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}
