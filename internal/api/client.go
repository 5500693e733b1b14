// Package api is the typed client for the Kavprime REST backend. Every
// backend resource maps to query and mutation methods; query responses
// are cached under resource tags, mutations invalidate the tags they
// declare, and identical in-flight queries are collapsed into one HTTP
// call.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

type Client struct {
	base   string
	http   *http.Client
	log    zerolog.Logger
	cache  *tagCache
	flight singleflight.Group
}

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the client logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a client for the API rooted at baseURL (e.g.
// "http://localhost:8000/api", no trailing slash).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		base:  baseURL,
		http:  &http.Client{},
		log:   zerolog.Nop(),
		cache: newTagCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Invalidate drops every cached response under the given tags. Exposed
// for callers that learn out-of-band that a resource changed.
func (c *Client) Invalidate(tags ...Tag) {
	c.cache.invalidate(tags...)
}

// get serves a query: cache first, then one shared HTTP call per
// distinct request key. The body is cached as raw bytes and decoded
// fresh for each reader.
func (c *Client) get(ctx context.Context, tag Tag, path string, query url.Values, out any) error {
	key := path
	if len(query) > 0 {
		key += "?" + query.Encode()
	}
	if b, ok := c.cache.get(tag, key); ok {
		c.log.Debug().Str("key", key).Msg("cache hit")
		return json.Unmarshal(b, out)
	}
	// Concurrent identical requests share this one flight; the first
	// caller's context drives the request.
	v, err, shared := c.flight.Do(key, func() (any, error) {
		b, err := c.do(ctx, http.MethodGet, key, nil)
		if err != nil {
			return nil, err
		}
		c.cache.put(tag, key, b)
		return b, nil
	})
	if err != nil {
		return err
	}
	if shared {
		c.log.Debug().Str("key", key).Msg("shared in-flight result")
	}
	return json.Unmarshal(v.([]byte), out)
}

// send serves a mutation. Tag invalidation happens only after a 2xx
// response; a failed mutation leaves the cache untouched.
func (c *Client) send(ctx context.Context, method, path string, body, out any, invalidates ...Tag) error {
	var rdr io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		rdr = bytes.NewReader(payload)
	}
	b, err := c.do(ctx, method, path, rdr)
	if err != nil {
		return err
	}
	c.cache.invalidate(invalidates...)
	if out != nil {
		return json.Unmarshal(b, out)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	c.log.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Msg("api call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{Status: resp.StatusCode, Data: b}
	}
	return b, nil
}
