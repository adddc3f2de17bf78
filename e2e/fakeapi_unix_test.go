//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeRepo struct {
	Name        string `json:"name"`
	FullName    string `json:"full_name"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Stars       int    `json:"stargazers_count"`
}

// fakeGitHub serves /users/{login}/repos from a fixed table
type fakeGitHub struct {
	*httptest.Server

	mu    sync.Mutex
	users map[string][]fakeRepo
	calls map[string]int
	delay time.Duration
}

func newFakeGitHub(t *testing.T, users map[string][]fakeRepo) *fakeGitHub {
	t.Helper()
	f := &fakeGitHub{users: users, calls: map[string]int{}}
	f.Server = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeGitHub) serve(w http.ResponseWriter, r *http.Request) {
	login, ok := strings.CutPrefix(r.URL.Path, "/users/")
	login, ok2 := strings.CutSuffix(login, "/repos")
	if !ok || !ok2 {
		http.NotFound(w, r)
		return
	}

	f.mu.Lock()
	f.calls[login]++
	repos, found := f.users[login]
	delay := f.delay
	f.mu.Unlock()

	time.Sleep(delay)
	if !found {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(repos)
}

func (f *fakeGitHub) Calls(login string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[login]
}

func (f *fakeGitHub) TotalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, n := range f.calls {
		total += n
	}
	return total
}
