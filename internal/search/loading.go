package search

// LoadingFlag reports whether a fetch is in flight. An override, when set,
// replaces the reported value without touching the in-flight state.
type LoadingFlag struct {
	inFlight bool
	override *bool
}

// Set records whether a fetch is outstanding
func (f *LoadingFlag) Set(v bool) {
	f.inFlight = v
}

// Override forces the reported value
func (f *LoadingFlag) Override(v bool) {
	f.override = &v
}

// ClearOverride drops a forced value
func (f *LoadingFlag) ClearOverride() {
	f.override = nil
}

// IsLoading returns the value the view should render with
func (f *LoadingFlag) IsLoading() bool {
	if f.override != nil {
		return *f.override
	}
	return f.inFlight
}

// InFlight returns whether a fetch is actually outstanding, ignoring any override
func (f *LoadingFlag) InFlight() bool {
	return f.inFlight
}
