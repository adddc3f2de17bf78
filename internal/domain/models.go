package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned by a fetcher when the looked-up user has no repositories to show
var ErrNotFound = errors.New("not found")

// Repository represents a single repository returned by a search
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	Description string    `json:"description"`
	HTMLURL     string    `json:"html_url"`
	Language    string    `json:"language"`
	Stars       int       `json:"stargazers_count"`
	Fork        bool      `json:"fork"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Names returns the repository names in order
func Names(repos []Repository) []string {
	names := make([]string, 0, len(repos))
	for _, r := range repos {
		names = append(names, r.Name)
	}
	return names
}
