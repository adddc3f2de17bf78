package ui

import (
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/router"
	"reposearch/internal/ui/input"
	"reposearch/internal/ui/views"
)

// Model is the root Bubble Tea model. It owns the router and forwards
// messages to the current page.
type Model struct {
	router       *router.Router
	keys         input.KeyMap
	styles       *views.Styles
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	width       int
	height      int
	inPagerMode bool // an external pager owns the terminal

	program *tea.Program
}

// NewModel creates the root model and opens startPath
func NewModel(r *router.Router, keys input.KeyMap, startPath string) (*Model, error) {
	if err := r.Push(startPath); err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", startPath, err)
	}

	return &Model{
		router:       r,
		keys:         keys,
		styles:       views.NewStyles(),
		helpRenderer: NewHelpRenderer(keys),
		helpOps:      NewHelpOps(),
	}, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps.SetProgram(p)
}

// Init returns the current page's initial command
func (m *Model) Init() tea.Cmd {
	return m.router.Current().Init()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.forward(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.router.Current().CapturesInput() {
			switch {
			case key.Matches(msg, m.keys.Quit):
				return m, tea.Quit
			case key.Matches(msg, m.keys.Help):
				return m, m.showHelp()
			}
		}
		return m, m.forward(msg)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil
	}

	return m, m.forward(msg)
}

// forward sends msg to the current page. When the page navigates, the new
// page is sized and initialised.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	before := m.router.CurrentPath()
	page, cmd := m.router.Current().Update(msg)
	if m.router.CurrentPath() == before {
		m.router.Replace(page)
		return cmd
	}

	next := m.router.Current()
	cmds := []tea.Cmd{cmd}
	if m.width > 0 {
		var sizeCmd tea.Cmd
		next, sizeCmd = next.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		m.router.Replace(next)
		cmds = append(cmds, sizeCmd)
	}
	cmds = append(cmds, next.Init())
	return tea.Batch(cmds...)
}

// showHelp returns a command that shows help using the ov pager
func (m *Model) showHelp() tea.Cmd {
	if m.program == nil {
		log.Printf("Help pager unavailable: program not set")
		return nil
	}
	content := m.helpRenderer.Render()
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}

	page := m.router.Current()
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("reposearch"))
	b.WriteString("  ")
	b.WriteString(m.styles.Route.Render(fmt.Sprintf("%s · %s", m.router.CurrentPath(), page.Title())))
	b.WriteString("\n\n")
	b.WriteString(page.View())

	return m.styles.Main.Render(b.String())
}
