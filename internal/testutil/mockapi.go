package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Request is one call recorded by MockAPI.
type Request struct {
	Method string
	Path   string
	Query  string
	Auth   string
	Body   []byte
}

// JSON decodes the recorded body into v.
func (r Request) JSON(t testing.TB, v any) {
	t.Helper()
	if err := json.Unmarshal(r.Body, v); err != nil {
		t.Fatalf("decoding %s %s body: %v", r.Method, r.Path, err)
	}
}

// MockAPI is an httptest server standing in for the back-office API.
// Routes are keyed by method and path below /api; unknown routes return 404.
type MockAPI struct {
	*httptest.Server

	mu       sync.Mutex
	routes   map[string]http.HandlerFunc
	requests []Request
}

// NewMockAPI starts a MockAPI that is closed when the test completes.
func NewMockAPI(t testing.TB) *MockAPI {
	t.Helper()
	m := &MockAPI{routes: make(map[string]http.HandlerFunc)}
	m.Server = httptest.NewServer(http.HandlerFunc(m.serve))
	t.Cleanup(m.Close)
	return m
}

func (m *MockAPI) serve(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	path := strings.TrimPrefix(r.URL.Path, "/api")

	m.mu.Lock()
	m.requests = append(m.requests, Request{
		Method: r.Method,
		Path:   path,
		Query:  r.URL.RawQuery,
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	h, ok := m.routes[r.Method+" "+path]
	m.mu.Unlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	h(w, r)
}

// Handle registers h for method and path (without the /api prefix).
func (m *MockAPI) Handle(method, path string, h http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.routes[method+" "+path] = h
}

// Reply answers method+path with {"message":"ok","data":data}.
func (m *MockAPI) Reply(method, path string, data any) {
	m.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		WriteEnvelope(w, http.StatusOK, data)
	})
}

// Fail answers method+path with an empty body and the given status.
func (m *MockAPI) Fail(method, path string, status int) {
	m.Handle(method, path, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

// Requests returns every recorded call in arrival order.
func (m *MockAPI) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// Calls returns the recorded calls to method+path.
func (m *MockAPI) Calls(method, path string) []Request {
	var out []Request
	for _, r := range m.Requests() {
		if r.Method == method && r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// WriteEnvelope writes data in the response envelope every endpoint uses.
func WriteEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"message": "ok", "data": data})
}
