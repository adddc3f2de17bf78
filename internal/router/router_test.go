package router

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reposearch/internal/eventbus"
)

type stubPage struct {
	title string
}

func (p *stubPage) Init() tea.Cmd { return nil }
func (p *stubPage) Update(tea.Msg) (Page, tea.Cmd) { return p, nil }
func (p *stubPage) View() string { return p.title }
func (p *stubPage) Title() string { return p.title }
func (p *stubPage) CapturesInput() bool { return false }

func countingFactory(title string, built *int) Factory {
	return func() Page {
		*built++
		return &stubPage{title: title}
	}
}

func TestPushShowsRegisteredPage(t *testing.T) {
	r := New(nil)
	var homeBuilt int
	r.Register("/", countingFactory("home", &homeBuilt))

	assert.Nil(t, r.Current())
	require.NoError(t, r.Push("/"))

	assert.Equal(t, "/", r.CurrentPath())
	assert.Equal(t, "home", r.Current().Title())
	assert.Equal(t, 1, homeBuilt)
}

func TestPushUnknownRoute(t *testing.T) {
	r := New(nil)

	err := r.Push("/missing")
	assert.True(t, errors.Is(err, ErrUnknownRoute))
	assert.Empty(t, r.CurrentPath())

	assert.True(t, errors.Is(r.Prefetch("/missing"), ErrUnknownRoute))
}

func TestPrefetchBuildsOnceAndPushReusesIt(t *testing.T) {
	r := New(nil)
	var homeBuilt, searchBuilt int
	r.Register("/", countingFactory("home", &homeBuilt))
	r.Register("/search", countingFactory("search", &searchBuilt))
	require.NoError(t, r.Push("/search"))

	require.NoError(t, r.Prefetch("/"))
	require.NoError(t, r.Prefetch("/"))
	assert.Equal(t, 1, homeBuilt)
	assert.Equal(t, "/search", r.CurrentPath(), "prefetch must not navigate")

	require.NoError(t, r.Push("/"))
	assert.Equal(t, 1, homeBuilt)
	assert.Equal(t, "home", r.Current().Title())
}

func TestPushDropsThePageLeft(t *testing.T) {
	r := New(nil)
	var homeBuilt, searchBuilt int
	r.Register("/", countingFactory("home", &homeBuilt))
	r.Register("/search", countingFactory("search", &searchBuilt))

	require.NoError(t, r.Push("/search"))
	require.NoError(t, r.Push("/"))
	require.NoError(t, r.Push("/search"))

	assert.Equal(t, 2, searchBuilt)
}

func TestPushSameRouteKeepsPage(t *testing.T) {
	r := New(nil)
	var built int
	r.Register("/", countingFactory("home", &built))

	require.NoError(t, r.Push("/"))
	first := r.Current()
	require.NoError(t, r.Push("/"))

	assert.Same(t, first, r.Current())
	assert.Equal(t, 1, built)
}

func TestPushPublishesRouteChanged(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventRouteChanged, func(e eventbus.DomainEvent) { got <- e })

	r := New(bus)
	var built int
	r.Register("/", countingFactory("home", &built))
	r.Register("/search", countingFactory("search", &built))
	require.NoError(t, r.Push("/search"))
	require.NoError(t, r.Push("/"))

	seen := map[string]string{}
	for i := 0; i < 2; i++ {
		select {
		case e := <-got:
			changed := e.(eventbus.RouteChangedEvent)
			seen[changed.To] = changed.From
		case <-time.After(time.Second):
			t.Fatal("route change not published")
		}
	}
	assert.Equal(t, map[string]string{"/search": "", "/": "/search"}, seen)
}
