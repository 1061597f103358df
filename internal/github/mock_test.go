package github

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient starts an httptest server backed by mux and returns a Client pointed at it.
func newTestClient(t *testing.T, token string) (Client, *http.ServeMux) {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c, err := NewClient(token, WithBaseURL(srv.URL), WithHTTPClient(srv.Client()), WithLogger(logger))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c, mux
}

// writeJSON writes body with a JSON content type.
func writeJSON(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	io.WriteString(w, body)
}
