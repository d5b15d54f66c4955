// Package critterspottest provides an in-process stand-in for the critterspot
// search service.
package critterspottest

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/seawatch/happywhale/internal/domain/search/query"
)

// SearchPath is the route the real service exposes for searches.
const SearchPath = "/v1/cs/admin/encounter/search"

// Submission is one recorded POST.
type Submission struct {
	Document  query.Document
	Raw       json.RawMessage
	RequestID string
	UserAgent string
}

// Server records every search document posted to it.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	submissions []Submission
	status      int
	body        string
}

// NewServer starts a fake service answering 200 with an empty result set.
// It is closed with the test.
func NewServer(tb testingTB) *Server {
	s := &Server{status: http.StatusOK, body: `{"results":[]}`}

	r := chi.NewRouter()
	r.Use(chiMiddleware.AllowContentType("application/json"))
	r.Post(SearchPath, s.handleSearch)

	s.Server = httptest.NewServer(r)
	tb.Cleanup(s.Close)
	return s
}

// testingTB is the subset of testing.TB the server needs.
type testingTB interface {
	Cleanup(func())
}

// Endpoint returns the full search URL.
func (s *Server) Endpoint() string {
	return s.URL + SearchPath
}

// RespondWith changes the reply for subsequent submissions.
func (s *Server) RespondWith(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
	s.body = body
}

// Submissions returns a copy of what has been posted so far.
func (s *Server) Submissions() []Submission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Submission, len(s.submissions))
	copy(out, s.submissions)
	return out
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var doc query.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		http.Error(w, "malformed search document", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.submissions = append(s.submissions, Submission{
		Document:  doc,
		Raw:       raw,
		RequestID: r.Header.Get("X-Request-ID"),
		UserAgent: r.UserAgent(),
	})
	status, body := s.status, s.body
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
