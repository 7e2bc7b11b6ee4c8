package client

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dmitrijs2005/divergentflow/internal/logging"
	"github.com/stretchr/testify/require"
)

const (
	testCreated = "2024-01-01T10:00:00Z"
	testUpdated = "2024-01-02T10:00:00.123Z"
)

func discardLogger() logging.Logger {
	return logging.Discard()
}

// recorded is one request as seen by the test server.
type recorded struct {
	Method      string
	EscapedPath string
	RawQuery    string
	Header      http.Header
	Body        []byte
}

type fakeServer struct {
	t    *testing.T
	srv  *httptest.Server
	mu   sync.Mutex
	reqs []recorded
}

// newFakeServer answers every request with status and body.
func newFakeServer(t *testing.T, status int, body any) *fakeServer {
	t.Helper()
	fs := &fakeServer{t: t}
	fs.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		fs.mu.Lock()
		fs.reqs = append(fs.reqs, recorded{
			Method:      r.Method,
			EscapedPath: r.URL.EscapedPath(),
			RawQuery:    r.URL.RawQuery,
			Header:      r.Header.Clone(),
			Body:        b,
		})
		fs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch v := body.(type) {
		case nil:
		case string:
			_, _ = w.Write([]byte(v))
		default:
			_ = json.NewEncoder(w).Encode(v)
		}
	}))
	t.Cleanup(fs.srv.Close)
	return fs
}

func (fs *fakeServer) client() *HTTPClient {
	return NewHTTPClient(fs.srv.URL+"/api/", nil, discardLogger())
}

func (fs *fakeServer) requests() []recorded {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	return append([]recorded(nil), fs.reqs...)
}

func (fs *fakeServer) only() recorded {
	fs.t.Helper()
	reqs := fs.requests()
	require.Len(fs.t, reqs, 1)
	return reqs[0]
}

func jsonBody(t *testing.T, b []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(b)).Decode(&m))
	return m
}

func captureJSON(id, userID, text string) map[string]any {
	return map[string]any{
		"id":        id,
		"userId":    userID,
		"rawText":   text,
		"createdAt": testCreated,
		"updatedAt": testUpdated,
	}
}
