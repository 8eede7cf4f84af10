package wordapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu  sync.Mutex
	req *http.Request
}

func (r *recorder) last() *http.Request {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.req
}

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()
	rec := &recorder{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.mu.Lock()
		rec.req = r.Clone(context.Background())
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, rec
}

func TestClient_FetchWord(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		expected      string
		expectedError bool
	}{
		{name: "string shape", status: http.StatusOK, body: `{"word": "serendipity"}`, expected: "serendipity"},
		{name: "list shape", status: http.StatusOK, body: `{"word": ["lantern", "ignored"]}`, expected: "lantern"},
		{name: "list skips blanks", status: http.StatusOK, body: `{"word": ["  ", "ember"]}`, expected: "ember"},
		{name: "trims whitespace", status: http.StatusOK, body: `{"word": "  quill \n"}`, expected: "quill"},
		{name: "empty string", status: http.StatusOK, body: `{"word": ""}`, expectedError: true},
		{name: "empty list", status: http.StatusOK, body: `{"word": []}`, expectedError: true},
		{name: "missing field", status: http.StatusOK, body: `{}`, expectedError: true},
		{name: "wrong field type", status: http.StatusOK, body: `{"word": 42}`, expectedError: true},
		{name: "invalid json", status: http.StatusOK, body: `not json`, expectedError: true},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"error": "Invalid API Key."}`, expectedError: true},
		{name: "server error", status: http.StatusInternalServerError, body: ``, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t, tt.status, tt.body)
			client := NewClient(Config{URL: server.URL, APIKey: "key", Timeout: time.Second})

			word, err := client.FetchWord(context.Background())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Empty(t, word)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, word)
		})
	}
}

func TestClient_FetchWord_StatusError(t *testing.T) {
	server, _ := newTestServer(t, http.StatusForbidden, "  forbidden  ")
	client := NewClient(Config{URL: server.URL, Timeout: time.Second})

	_, err := client.FetchWord(context.Background())

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusForbidden, statusErr.Code)
	assert.Equal(t, "forbidden", statusErr.Body)
	assert.Equal(t, "API error 403: forbidden", err.Error())
}

func TestClient_FetchWord_EmptyWord(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"word": []}`)
	client := NewClient(Config{URL: server.URL})

	_, err := client.FetchWord(context.Background())

	assert.ErrorIs(t, err, ErrEmptyWord)
}

func TestClient_SendsAPIKey(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"word": "x"}`)
	client := NewClient(Config{URL: server.URL, APIKey: "secret-key"})

	_, err := client.FetchWord(context.Background())

	require.NoError(t, err)
	got := rec.last()
	require.NotNil(t, got)
	assert.Equal(t, http.MethodGet, got.Method)
	assert.Equal(t, "secret-key", got.Header.Get("X-Api-Key"))
	assert.Equal(t, "application/json", got.Header.Get("Accept"))
}

func TestClient_OmitsEmptyAPIKey(t *testing.T) {
	server, rec := newTestServer(t, http.StatusOK, `{"word": "x"}`)
	client := NewClient(Config{URL: server.URL})

	_, err := client.FetchWord(context.Background())

	require.NoError(t, err)
	require.NotNil(t, rec.last())
	_, present := rec.last().Header["X-Api-Key"]
	assert.False(t, present)
}

func TestClient_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(Config{URL: server.URL, Timeout: 20 * time.Millisecond})

	start := time.Now()
	_, err := client.FetchWord(context.Background())

	assert.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 900*time.Millisecond)
}

func TestClient_CancelledContext(t *testing.T) {
	server, _ := newTestServer(t, http.StatusOK, `{"word": "x"}`)
	client := NewClient(Config{URL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchWord(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewClient_Defaults(t *testing.T) {
	hc := &http.Client{}
	client := NewClient(Config{}, WithHTTPClient(hc))

	assert.Equal(t, DefaultURL, client.url)
	assert.Same(t, hc, client.httpClient)
	assert.Zero(t, client.timeout)
}

func TestClient_ReusesConnection(t *testing.T) {
	var (
		mu    sync.Mutex
		conns int
	)
	server := httptest.NewUnstartedServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Trailing bytes the JSON decoder never reads
		_, _ = w.Write([]byte(`{"word": "harbor"}` + "\n" + strings.Repeat(" ", 256)))
	}))
	server.Config.ConnState = func(_ net.Conn, state http.ConnState) {
		if state == http.StateNew {
			mu.Lock()
			conns++
			mu.Unlock()
		}
	}
	server.Start()
	t.Cleanup(server.Close)

	client := NewClient(Config{URL: server.URL, Timeout: time.Second})
	for i := 0; i < 5; i++ {
		word, err := client.FetchWord(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "harbor", word)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, conns)
}
