// Package gateway issues the REST calls the page makes against the tourism
// API. Under GOOS=js net/http is backed by the browser fetch API, so the same
// client serves the wasm page and native tools.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"tourism/internal/domain/models"
)

// ErrRequestFailed covers transport errors, non-2xx answers and bodies that
// are not JSON alike.
var ErrRequestFailed = errors.New("request failed")

const (
	touristsPath     = "/api/tourists"
	destinationsPath = "/api/destinations"
	visitsPath       = "/api/visits"
)

type Client struct {
	baseURL string
	http    *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default client, which has no timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New builds a client rooted at baseURL; an empty baseURL issues
// origin-relative requests, which is what the browser page wants.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) ListTourists(ctx context.Context) ([]models.Tourist, error) {
	var out []models.Tourist
	if err := c.do(ctx, http.MethodGet, touristsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListDestinations(ctx context.Context) ([]models.Destination, error) {
	var out []models.Destination
	if err := c.do(ctx, http.MethodGet, destinationsPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateTourist(ctx context.Context, p models.TouristPayload) error {
	return c.do(ctx, http.MethodPost, touristsPath, p, nil)
}

func (c *Client) CreateDestination(ctx context.Context, p models.DestinationPayload) error {
	return c.do(ctx, http.MethodPost, destinationsPath, p, nil)
}

func (c *Client) CreateVisit(ctx context.Context, p models.VisitPayload) error {
	return c.do(ctx, http.MethodPost, visitsPath, p, nil)
}

// do sends one request. A nil out still requires the answer to be JSON; the
// decoded value is discarded.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode %s %s: %v", ErrRequestFailed, method, path, err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrRequestFailed, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: %s %s: status %d", ErrRequestFailed, method, path, resp.StatusCode)
	}

	if out == nil {
		var ignored json.RawMessage
		out = &ignored
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: decode: %v", ErrRequestFailed, method, path, err)
	}
	return nil
}
