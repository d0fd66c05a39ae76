package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the base URL of the genoma REST API.
const DefaultBaseURL = "https://ib.ing.cz/genoma_api/rest"

// Client is an ING internet banking API client bound to one browser session.
// It does not mutate any state after New returns.
type Client struct {
	baseURL    string
	httpClient *http.Client
	now        func() time.Time

	cookie    string
	sessionID string
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the API.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithClock sets the source of the current time, used to default the end of
// a movements date range.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a client from the raw Cookie header copied from a browser.
// It fails with ErrSessionIDNotFound if the cookie carries no genoma session.
func New(cookie string, opts ...Option) (*Client, error) {
	sessionID, ok := ExtractSessionID(cookie)
	if !ok {
		return nil, fmt.Errorf("extracting %s from cookie: %w", SessionCookieName, ErrSessionIDNotFound)
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: http.DefaultClient,
		now:        time.Now,
		cookie:     cookie,
		sessionID:  sessionID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SessionID returns the session identifier derived from the cookie.
func (c *Client) SessionID() string {
	return c.sessionID
}

// get performs a GET request and decodes the JSON response into a generic value.
func (c *Client) get(ctx context.Context, path string, query url.Values) (any, error) {
	start := time.Now()

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = Headers(c.cookie, c.sessionID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("HTTP request failed",
			slog.String("method", http.MethodGet),
			slog.String("path", path),
			slog.String("error", err.Error()),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := decodeContent(resp)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := parseError(resp.StatusCode, body)
		slog.Debug("HTTP request returned error",
			slog.String("method", http.MethodGet),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()),
		)
		return nil, apiErr
	}

	if isHTML(resp.Header.Get("Content-Type")) {
		slog.Debug("HTTP request returned HTML",
			slog.String("method", http.MethodGet),
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("decoding response: %w", ErrHTMLResponse)
	}

	dec := json.NewDecoder(body)
	dec.UseNumber()
	var result any
	if err := dec.Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding response: %w", ErrTrailingData)
	}

	slog.Debug("HTTP request completed",
		slog.String("method", http.MethodGet),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()),
	)

	return result, nil
}

// parseError builds an APIError from an error response body.
func parseError(status int, body io.Reader) error {
	data, _ := io.ReadAll(io.LimitReader(body, 64<<10))
	var errResp errorResponse
	if json.Unmarshal(data, &errResp) == nil && errResp.message() != "" {
		return &APIError{StatusCode: status, Message: errResp.message()}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(data))}
}
