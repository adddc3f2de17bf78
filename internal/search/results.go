package search

import "reposearch/internal/domain"

// ResultKind identifies which outcome a ResultSet holds
type ResultKind int

const (
	ResultEmpty ResultKind = iota
	ResultList
	ResultNotFound
)

func (k ResultKind) String() string {
	switch k {
	case ResultList:
		return "list"
	case ResultNotFound:
		return "not found"
	default:
		return "empty"
	}
}

// ResultSet is the outcome of the last completed search
type ResultSet struct {
	Kind  ResultKind
	Items []domain.Repository
}

// EmptyResults is the state before any search completes
func EmptyResults() ResultSet {
	return ResultSet{Kind: ResultEmpty}
}

// ListResults holds found items. An empty list is a not-found outcome.
func ListResults(items []domain.Repository) ResultSet {
	if len(items) == 0 {
		return NotFoundResults()
	}
	return ResultSet{Kind: ResultList, Items: items}
}

// NotFoundResults marks a search that found nothing
func NotFoundResults() ResultSet {
	return ResultSet{Kind: ResultNotFound}
}

func (r ResultSet) IsEmpty() bool { return r.Kind == ResultEmpty }
func (r ResultSet) IsNotFound() bool { return r.Kind == ResultNotFound }
