package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Route         lipgloss.Style
	Heading       lipgloss.Style
	Dim           lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Input         lipgloss.Style
	InputFocused  lipgloss.Style
	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	Item          lipgloss.Style
	ItemDetail    lipgloss.Style
	Stars         lipgloss.Style
	Error         lipgloss.Style
	MenuItem      lipgloss.Style
	MenuSelected  lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Route:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")), // cyan
		Dim:     lipgloss.NewStyle().Faint(true),
		Help:    lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("238")).
			Padding(0, 1),
		ButtonFocused: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("99")).
			Padding(0, 1),
		Item:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		ItemDetail:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Stars:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Error:        lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		MenuItem:     lipgloss.NewStyle().PaddingLeft(2),
		MenuSelected: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
	}
}
