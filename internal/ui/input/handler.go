package input

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reposearch/internal/ui/input/types"
)

// MaxLoginLength is the longest username GitHub accepts
const MaxLoginLength = 39

// Handler turns key presses on the search page into actions. It owns the
// text input and the focus ring.
type Handler struct {
	keys      KeyMap
	focus     types.Focus
	textInput *textinput.Model
}

// New creates a handler with the text input focused
func New(keys KeyMap, placeholder string) *Handler {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = MaxLoginLength
	ti.Focus()

	return &Handler{
		keys:      keys,
		focus:     types.FocusInput,
		textInput: &ti,
	}
}

// HandleKey processes a key message and returns the resulting actions
func (h *Handler) HandleKey(msg tea.KeyMsg) ([]types.Action, tea.Cmd) {
	switch {
	case key.Matches(msg, h.keys.Next):
		return h.SetFocus(h.focus.Step(1))
	case key.Matches(msg, h.keys.Prev):
		return h.SetFocus(h.focus.Step(-1))
	case key.Matches(msg, h.keys.Activate):
		if h.focus == types.FocusReturnButton {
			return []types.Action{types.ReturnAction{}}, nil
		}
		return []types.Action{types.SubmitSearchAction{Text: h.textInput.Value()}}, nil
	}

	if h.focus != types.FocusInput {
		switch {
		case key.Matches(msg, h.keys.FocusInput):
			return h.SetFocus(types.FocusInput)
		case key.Matches(msg, h.keys.Sort):
			return []types.Action{types.CycleSortAction{}}, nil
		}
		return nil, nil
	}

	before := h.textInput.Value()
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	if after := h.textInput.Value(); after != before {
		return []types.Action{types.UpdateTextAction{Text: after}}, cmd
	}
	return nil, cmd
}

// SetFocus moves focus to f
func (h *Handler) SetFocus(f types.Focus) ([]types.Action, tea.Cmd) {
	if f == h.focus {
		return nil, nil
	}
	from := h.focus
	h.focus = f

	var cmd tea.Cmd
	if f == types.FocusInput {
		cmd = h.textInput.Focus()
	} else if from == types.FocusInput {
		h.textInput.Blur()
	}
	return []types.Action{types.FocusChangedAction{From: from, To: f}}, cmd
}

// Focus returns the focused element
func (h *Handler) Focus() types.Focus {
	return h.focus
}

// CapturesInput reports whether printable keys are going to the text input
func (h *Handler) CapturesInput() bool {
	return h.focus == types.FocusInput
}

// TextInput returns the text input model
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// Value returns the current input text
func (h *Handler) Value() string {
	return h.textInput.Value()
}

// Update handles non-keyboard messages for the text input (cursor blink)
func (h *Handler) Update(msg tea.Msg) tea.Cmd {
	if h.focus != types.FocusInput {
		return nil
	}
	var cmd tea.Cmd
	*h.textInput, cmd = h.textInput.Update(msg)
	return cmd
}
