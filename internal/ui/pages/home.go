package pages

import (
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/router"
	"reposearch/internal/ui/input"
	"reposearch/internal/ui/input/types"
	"reposearch/internal/ui/views"
)

// SearchPath is the route of the search page
const SearchPath = "/search"

type homeEntry struct {
	views.MenuEntry
	path string
}

// HomePage is the landing menu
type HomePage struct {
	nav      router.Navigator
	keys     input.KeyMap
	help     help.Model
	entries  []homeEntry
	selected int
	renderer *views.HomeRenderer
}

// NewHomePage creates the home page
func NewHomePage(nav router.Navigator, keys input.KeyMap) *HomePage {
	return &HomePage{
		nav:  nav,
		keys: keys,
		help: help.New(),
		entries: []homeEntry{
			{
				MenuEntry: views.MenuEntry{Label: "Search repositories", Description: "list a GitHub user's public repositories"},
				path:      SearchPath,
			},
		},
		renderer: views.NewHomeRenderer(views.NewStyles()),
	}
}

func (p *HomePage) Title() string { return "Home" }

func (p *HomePage) CapturesInput() bool { return false }

func (p *HomePage) Init() tea.Cmd { return nil }

// Update handles messages
func (p *HomePage) Update(msg tea.Msg) (router.Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.help.Width = msg.Width
	case tea.KeyMsg:
		if action := p.actionFor(msg); action != nil {
			p.processAction(action)
		}
	}
	return p, nil
}

func (p *HomePage) actionFor(msg tea.KeyMsg) types.Action {
	switch {
	case key.Matches(msg, p.keys.Up), key.Matches(msg, p.keys.Prev):
		return types.NavigateAction{Direction: "up"}
	case key.Matches(msg, p.keys.Down), key.Matches(msg, p.keys.Next):
		return types.NavigateAction{Direction: "down"}
	case key.Matches(msg, p.keys.Activate):
		return types.OpenAction{}
	}
	return nil
}

func (p *HomePage) processAction(action types.Action) {
	switch a := action.(type) {
	case types.NavigateAction:
		if len(p.entries) == 0 {
			return
		}
		delta := 1
		if a.Direction == "up" {
			delta = -1
		}
		n := len(p.entries)
		p.selected = ((p.selected+delta)%n + n) % n

	case types.OpenAction:
		if p.selected >= len(p.entries) {
			return
		}
		path := p.entries[p.selected].path
		if err := p.nav.Push(path); err != nil {
			log.Printf("Navigation to %s failed: %v", path, err)
		}
	}
}

// View renders the page
func (p *HomePage) View() string {
	entries := make([]views.MenuEntry, 0, len(p.entries))
	for _, e := range p.entries {
		entries = append(entries, e.MenuEntry)
	}
	return p.renderer.Render(views.HomeViewState{
		Entries:  entries,
		Selected: p.selected,
		Help:     p.help.View(p.keys),
	})
}
