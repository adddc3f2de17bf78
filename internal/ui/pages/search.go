package pages

import (
	"context"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/router"
	"reposearch/internal/search"
	"reposearch/internal/ui/input"
	"reposearch/internal/ui/input/types"
	"reposearch/internal/ui/logic"
	"reposearch/internal/ui/views"
)

// ReturnPath is where the Return control navigates
const ReturnPath = "/"

// SearchPage is the repository search form
type SearchPage struct {
	ctx        context.Context
	controller *search.Controller
	nav        router.Navigator
	input      *input.Handler
	keys       input.KeyMap
	help       help.Model
	spinner    spinner.Model
	renderer   *views.SearchRenderer
	width      int
	sortMode   logic.SortMode

	showDescriptions bool
}

// SearchPageOptions configures a SearchPage
type SearchPageOptions struct {
	Keys             input.KeyMap
	ShowDescriptions bool
}

// NewSearchPage creates the search page. ctx bounds the fetches it starts.
func NewSearchPage(ctx context.Context, controller *search.Controller, nav router.Navigator, opts SearchPageOptions) *SearchPage {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &SearchPage{
		ctx:              ctx,
		controller:       controller,
		nav:              nav,
		input:            input.New(opts.Keys, "GitHub username"),
		keys:             opts.Keys,
		help:             help.New(),
		spinner:          s,
		renderer:         views.NewSearchRenderer(views.NewStyles()),
		showDescriptions: opts.ShowDescriptions,
	}
}

func (p *SearchPage) Title() string { return "Search repositories" }

// CapturesInput reports whether keys go to the username field
func (p *SearchPage) CapturesInput() bool {
	return p.input.CapturesInput()
}

// Controller exposes the search state machine
func (p *SearchPage) Controller() *search.Controller {
	return p.controller
}

// Init starts the cursor blink, and the spinner when loading is forced
func (p *SearchPage) Init() tea.Cmd {
	cmds := []tea.Cmd{p.input.TextInput().Focus()}
	if p.controller.Loading() {
		cmds = append(cmds, p.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (p *SearchPage) Update(msg tea.Msg) (router.Page, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.help.Width = msg.Width
		return p, nil

	case tea.KeyMsg:
		actions, cmd := p.input.HandleKey(msg)
		cmds := []tea.Cmd{cmd}
		for _, action := range actions {
			cmds = append(cmds, p.processAction(action))
		}
		return p, tea.Batch(cmds...)

	case search.ResolvedMsg:
		p.controller.Resolve(msg)
		return p, nil

	case spinner.TickMsg:
		if !p.controller.Loading() {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	default:
		return p, p.input.Update(msg)
	}
}

func (p *SearchPage) processAction(action types.Action) tea.Cmd {
	switch a := action.(type) {
	case types.UpdateTextAction:
		p.controller.SetQuery(a.Text)

	case types.SubmitSearchAction:
		cmd := p.controller.Submit(p.ctx, a.Text)
		if cmd == nil {
			return nil
		}
		return tea.Batch(cmd, p.spinner.Tick)

	case types.FocusChangedAction:
		if a.To == types.FocusReturnButton {
			if err := p.nav.Prefetch(ReturnPath); err != nil {
				log.Printf("Prefetch %s failed: %v", ReturnPath, err)
			}
		}

	case types.CycleSortAction:
		p.sortMode = p.sortMode.Next()

	case types.ReturnAction:
		if err := p.nav.Push(ReturnPath); err != nil {
			log.Printf("Navigation to %s failed: %v", ReturnPath, err)
		}
	}
	return nil
}

// View renders the page
func (p *SearchPage) View() string {
	results := p.controller.Results()
	var sortLabel string
	if results.Kind == search.ResultList {
		results.Items = logic.SortRepositories(results.Items, p.sortMode)
		sortLabel = p.sortMode.String()
	}

	return p.renderer.Render(views.SearchViewState{
		Width:            p.width,
		Input:            p.input.TextInput().View(),
		Focus:            p.input.Focus(),
		Loading:          p.controller.Loading(),
		Spinner:          p.spinner.View(),
		Results:          results,
		ShowDescriptions: p.showDescriptions,
		SortMode:         sortLabel,
		Help:             p.help.View(p.keys),
	})
}
