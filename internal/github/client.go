// Package github fetches a user's public repositories from the GitHub REST API.
package github

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"reposearch/internal/config"
	"reposearch/internal/domain"
)

// Client implements search.Fetcher over the GitHub REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
	perPage    int
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient creates a client from the GitHub settings. When a token is set
// requests are authenticated with it.
func NewClient(settings config.GitHubSettings) *Client {
	httpClient := &http.Client{Timeout: settings.Timeout()}
	if settings.Token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: settings.Token})
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, src)
		httpClient.Timeout = settings.Timeout()
	}

	limit := rate.Inf
	if settings.RequestsPerSecond > 0 {
		limit = rate.Limit(settings.RequestsPerSecond)
	}
	burst := settings.Burst
	if burst < 1 {
		burst = 1
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(settings.APIURL, "/"),
		perPage:    settings.PerPage,
		userAgent:  settings.UserAgent,
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// FetchRepositories returns the public repositories of login, most recently
// updated first. A missing user, or a user without repositories, yields
// domain.ErrNotFound.
func (c *Client) FetchRepositories(ctx context.Context, login string) ([]domain.Repository, error) {
	login = strings.TrimSpace(login)
	if login == "" {
		return nil, domain.ErrNotFound
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := fmt.Sprintf("%s/users/%s/repos", c.baseURL, url.PathEscape(login))
	q := url.Values{}
	q.Set("per_page", strconv.Itoa(c.perPage))
	q.Set("sort", "updated")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repositories for %s: %w", login, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("user %s: %w", login, domain.ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var repos []domain.Repository
	if err := json.NewDecoder(resp.Body).Decode(&repos); err != nil {
		return nil, fmt.Errorf("failed to decode repositories: %w", err)
	}

	log.Printf("GitHub: fetched %d repositories for %s", len(repos), login)
	if len(repos) == 0 {
		return nil, fmt.Errorf("user %s has no public repositories: %w", login, domain.ErrNotFound)
	}
	return repos, nil
}

// StatusError is returned for non-2xx responses other than 404
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("github: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("github: unexpected status %d: %s", e.Code, e.Body)
}
