package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reposearch/internal/domain"
	"reposearch/internal/search"
	"reposearch/internal/ui/input/types"
)

// Labels of the search page elements
const (
	SearchButtonLabel = "Search Repositories"
	ReturnButtonLabel = "Return"
	LoadingHeading    = "loading..."
	NotFoundMessage   = "User not found"
	IdleHint          = "Type a GitHub username and press enter."
)

// SearchViewState contains all the state needed to render the search page
type SearchViewState struct {
	Width            int
	Input            string // rendered text input
	Focus            types.Focus
	Loading          bool
	Spinner          string
	Results          search.ResultSet
	ShowDescriptions bool
	SortMode         string // shown above the list when set
	Help             string
}

// SearchRenderer renders the search page
type SearchRenderer struct {
	styles *Styles
}

// NewSearchRenderer creates a new search page renderer
func NewSearchRenderer(styles *Styles) *SearchRenderer {
	return &SearchRenderer{styles: styles}
}

// Render produces the search page
func (r *SearchRenderer) Render(state SearchViewState) string {
	var b strings.Builder

	inputStyle := r.styles.Input
	if state.Focus == types.FocusInput {
		inputStyle = r.styles.InputFocused
	}
	b.WriteString(inputStyle.Render(state.Input))
	b.WriteString("\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		r.button(SearchButtonLabel, state.Focus == types.FocusSearchButton),
		"  ",
		r.button(ReturnButtonLabel, state.Focus == types.FocusReturnButton),
	)
	b.WriteString(buttons)
	b.WriteString("\n\n")

	b.WriteString(r.body(state))

	if state.Help != "" {
		b.WriteString("\n\n")
		b.WriteString(r.styles.Help.Render(state.Help))
	}
	return b.String()
}

func (r *SearchRenderer) button(label string, focused bool) string {
	if focused {
		return r.styles.ButtonFocused.Render(label)
	}
	return r.styles.Button.Render(label)
}

// body renders exactly one of: loading heading, not-found message, result list, idle hint
func (r *SearchRenderer) body(state SearchViewState) string {
	if state.Loading {
		heading := r.styles.Heading.Render(LoadingHeading)
		if state.Spinner != "" {
			return state.Spinner + " " + heading
		}
		return heading
	}

	switch state.Results.Kind {
	case search.ResultNotFound:
		return r.styles.Error.Render(NotFoundMessage)
	case search.ResultList:
		return r.renderList(state)
	default:
		return r.styles.Dim.Render(IdleHint)
	}
}

func (r *SearchRenderer) renderList(state SearchViewState) string {
	lines := make([]string, 0, len(state.Results.Items)+1)
	if state.SortMode != "" {
		lines = append(lines, r.styles.Dim.Render(fmt.Sprintf("%d repositories · sorted by %s", len(state.Results.Items), state.SortMode)))
	}
	for _, repo := range state.Results.Items {
		lines = append(lines, r.renderItem(repo, state))
	}
	return strings.Join(lines, "\n")
}

func (r *SearchRenderer) renderItem(repo domain.Repository, state SearchViewState) string {
	line := "• " + r.styles.Item.Render(repo.Name)
	if !state.ShowDescriptions {
		return line
	}

	var details []string
	if repo.Stars > 0 {
		details = append(details, r.styles.Stars.Render(fmt.Sprintf("★ %d", repo.Stars)))
	}
	if repo.Language != "" {
		details = append(details, r.styles.ItemDetail.Render(repo.Language))
	}
	if repo.Fork {
		details = append(details, r.styles.ItemDetail.Render("fork"))
	}
	if len(details) > 0 {
		line += "  " + strings.Join(details, " ")
	}

	if repo.Description != "" {
		desc := repo.Description
		maxWidth := state.Width - 8
		if maxWidth > 10 && lipgloss.Width(desc) > maxWidth {
			desc = truncate(desc, maxWidth)
		}
		line += "\n    " + r.styles.ItemDetail.Render(desc)
	}
	return line
}

func truncate(s string, width int) string {
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
