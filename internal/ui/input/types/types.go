package types

// Focus identifies the element of the search page that receives keys
type Focus int

const (
	FocusInput Focus = iota
	FocusSearchButton
	FocusReturnButton
)

// focusOrder is the tab order of the search page
var focusOrder = []Focus{FocusInput, FocusSearchButton, FocusReturnButton}

func (f Focus) String() string {
	switch f {
	case FocusInput:
		return "input"
	case FocusSearchButton:
		return "search"
	case FocusReturnButton:
		return "return"
	default:
		return "unknown"
	}
}

// Step returns the focus delta positions away, wrapping around
func (f Focus) Step(delta int) Focus {
	idx := 0
	for i, candidate := range focusOrder {
		if candidate == f {
			idx = i
			break
		}
	}
	n := len(focusOrder)
	return focusOrder[((idx+delta)%n+n)%n]
}

// Action represents a command the page should execute
type Action interface {
	Type() string
}
