package views

import (
	"strings"
)

// MenuEntry is one line of the home menu
type MenuEntry struct {
	Label       string
	Description string
}

// HomeViewState contains the state needed to render the home page
type HomeViewState struct {
	Entries  []MenuEntry
	Selected int
	Help     string
}

// HomeRenderer renders the home page
type HomeRenderer struct {
	styles *Styles
}

// NewHomeRenderer creates a new home page renderer
func NewHomeRenderer(styles *Styles) *HomeRenderer {
	return &HomeRenderer{styles: styles}
}

// Render produces the home page
func (r *HomeRenderer) Render(state HomeViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Heading.Render("Home"))
	b.WriteString("\n\n")

	for i, entry := range state.Entries {
		label := entry.Label
		if i == state.Selected {
			b.WriteString(r.styles.MenuSelected.Render("› " + label))
		} else {
			b.WriteString(r.styles.MenuItem.Render(label))
		}
		if entry.Description != "" {
			b.WriteString("  ")
			b.WriteString(r.styles.Dim.Render(entry.Description))
		}
		b.WriteString("\n")
	}

	if state.Help != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Help.Render(state.Help))
	}
	return b.String()
}
