package logic

import (
	"sort"
	"strings"

	"reposearch/internal/domain"
)

// SortMode represents the order of the result list
type SortMode int

const (
	SortByUpdated SortMode = iota // most recently updated first, the API order
	SortByName
	SortByStars
)

var sortModeNames = []string{"updated", "name", "stars"}

func (m SortMode) String() string {
	if m < 0 || int(m) >= len(sortModeNames) {
		return "unknown"
	}
	return sortModeNames[m]
}

// Next returns the mode after m, wrapping around
func (m SortMode) Next() SortMode {
	return SortMode((int(m) + 1) % len(sortModeNames))
}

// SortRepositories returns a copy of repos ordered by mode
func SortRepositories(repos []domain.Repository, mode SortMode) []domain.Repository {
	sorted := make([]domain.Repository, len(repos))
	copy(sorted, repos)

	switch mode {
	case SortByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	case SortByStars:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Stars != sorted[j].Stars {
				return sorted[i].Stars > sorted[j].Stars
			}
			return strings.ToLower(sorted[i].Name) < strings.ToLower(sorted[j].Name)
		})
	default:
		// Zero times keep their API position
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].UpdatedAt.After(sorted[j].UpdatedAt)
		})
	}
	return sorted
}
