package types

// Focus actions
type FocusChangedAction struct {
	From Focus
	To   Focus
}

func (a FocusChangedAction) Type() string { return "focus_changed" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitSearchAction struct {
	Text string
}

func (a SubmitSearchAction) Type() string { return "submit_search" }

// Navigation actions
type ReturnAction struct{}

func (a ReturnAction) Type() string { return "return" }

type NavigateAction struct {
	Direction string // "up" or "down"
}

func (a NavigateAction) Type() string { return "navigate" }

type OpenAction struct{}

func (a OpenAction) Type() string { return "open" }

// Result list actions
type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }
