package search

import "strings"

// Query holds the text the user typed
type Query struct {
	text string
}

func (q *Query) Set(text string) { q.text = text }

func (q Query) String() string { return q.text }

// Trimmed returns the text without surrounding whitespace
func (q Query) Trimmed() string { return strings.TrimSpace(q.text) }

// IsBlank reports whether the query has nothing to search for
func (q Query) IsBlank() bool { return q.Trimmed() == "" }
