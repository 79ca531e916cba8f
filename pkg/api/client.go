// Package api provides a thin JSON REST client for querying application
// state alongside the browser session.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// CookieSource supplies the browser's current cookie store. The session
// credential is re-derived from it on every request so API calls always act
// as the logged-in browser user.
type CookieSource func() ([]*http.Cookie, error)

// Client issues JSON requests against the application's REST surface.
type Client struct {
	base          *url.URL
	http          *http.Client
	sessionCookie string
	cookies       CookieSource
}

// NewClient creates a client for the given base URL. sessionCookie names the
// cookie that carries the session credential.
func NewClient(baseURL, sessionCookie string, cookies CookieSource) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	return &Client{
		base:          base,
		http:          &http.Client{Timeout: 30 * time.Second},
		sessionCookie: sessionCookie,
		cookies:       cookies,
	}, nil
}

// Get fetches endpoint and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out interface{}) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post sends body as JSON to endpoint and decodes the response into out.
func (c *Client) Post(ctx context.Context, endpoint string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// Delete issues a DELETE against endpoint.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body, out interface{}) error {
	ref, err := url.Parse("api/" + endpoint)
	if err != nil {
		return fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	target := c.base.ResolveReference(ref)

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	if err := c.attachSession(req); err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s %s returned %d: %s", method, endpoint, resp.StatusCode, snippet)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

// attachSession copies the session cookie out of the browser's cookie store.
func (c *Client) attachSession(req *http.Request) error {
	if c.cookies == nil {
		return nil
	}
	cookies, err := c.cookies()
	if err != nil {
		return fmt.Errorf("read browser cookies: %w", err)
	}
	for _, cookie := range cookies {
		if cookie.Name == c.sessionCookie {
			req.AddCookie(&http.Cookie{Name: cookie.Name, Value: cookie.Value})
			return nil
		}
	}
	return nil
}
