package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wordgen/internal/config"
	"wordgen/internal/domain"
	"wordgen/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Memory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"word": ["lighthouse"]}`))
	}))
	defer srv.Close()

	cfg := &config.Config{
		DashboardSource: config.SourceMemory,
		WordsAPI: config.WordsAPIConfig{
			URL:     srv.URL,
			Key:     "secret",
			Timeout: time.Second,
		},
	}

	svc, err := Build(cfg, testutil.NewTestLogger())
	require.NoError(t, err)
	defer svc.Close()

	words, err := svc.Generator.Generate(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"lighthouse", "lighthouse", "lighthouse"}, words)

	ov, err := svc.Dashboard.Overview()
	require.NoError(t, err)
	assert.Len(t, ov.Cards, 4)
}

func TestBuild_UpstreamDownUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	cfg := &config.Config{
		DashboardSource: config.SourceMemory,
		WordsAPI:        config.WordsAPIConfig{URL: srv.URL, Timeout: time.Second},
	}

	svc, err := Build(cfg, testutil.NewTestLogger())
	require.NoError(t, err)

	words, err := svc.Generator.Generate(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, words, 5)
	for _, w := range words {
		assert.True(t, domain.IsFallbackWord(w), w)
	}
}

func TestServices_CloseWithoutDatabase(t *testing.T) {
	assert.NoError(t, (&Services{}).Close())
}
