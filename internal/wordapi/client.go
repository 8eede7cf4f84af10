// Package wordapi is a client for a random-word HTTP API.
// It speaks the API Ninjas randomword contract: GET with an X-Api-Key header,
// JSON body {"word": "..."} or {"word": ["..."]}.
package wordapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultURL     = "https://api.api-ninjas.com/v1/randomword"
	DefaultTimeout = 5 * time.Second

	apiKeyHeader = "X-Api-Key"
	maxBodyBytes = 64 << 10
)

// ErrEmptyWord is returned when the upstream answers without a usable word
var ErrEmptyWord = errors.New("response contained no word")

// StatusError is returned for non-2xx upstream responses
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("API error %d", e.Code)
	}
	return fmt.Sprintf("API error %d: %s", e.Code, e.Body)
}

// Config holds client settings
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration // per request; zero disables the bound
}

// Client fetches single random words
type Client struct {
	httpClient *http.Client
	url        string
	apiKey     string
	timeout    time.Duration
}

// Option customizes a Client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a client; an empty URL falls back to DefaultURL
func NewClient(cfg Config, opts ...Option) *Client {
	c := &Client{
		httpClient: newHTTPClient(),
		url:        cfg.URL,
		apiKey:     cfg.APIKey,
		timeout:    cfg.Timeout,
	}
	if c.url == "" {
		c.url = DefaultURL
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchWord performs one request and returns the word it carries
func (c *Client) FetchWord(ctx context.Context) (string, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		// Read to EOF so the connection goes back to the idle pool
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var payload wordResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	return payload.first()
}

type wordResponse struct {
	Word json.RawMessage `json:"word"`
}

// first accepts both the string and the list shape of "word"
func (r wordResponse) first() (string, error) {
	if len(r.Word) == 0 {
		return "", ErrEmptyWord
	}

	var single string
	if err := json.Unmarshal(r.Word, &single); err == nil {
		if w := strings.TrimSpace(single); w != "" {
			return w, nil
		}
		return "", ErrEmptyWord
	}

	var list []string
	if err := json.Unmarshal(r.Word, &list); err != nil {
		return "", fmt.Errorf("decode word field: %w", err)
	}
	for _, w := range list {
		if w = strings.TrimSpace(w); w != "" {
			return w, nil
		}
	}
	return "", ErrEmptyWord
}

func newHTTPClient() *http.Client {
	dialer := &net.Dialer{
		Timeout:   3 * time.Second,
		KeepAlive: 30 * time.Second,
	}

	tr := &http.Transport{
		Proxy:       http.ProxyFromEnvironment,
		DialContext: dialer.DialContext,

		ForceAttemptHTTP2: true,

		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,

		TLSHandshakeTimeout:   3 * time.Second,
		ResponseHeaderTimeout: 5 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	return &http.Client{Transport: tr}
}
