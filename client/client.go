// Package client talks to the remote Bridge backend: bearer-token
// authenticated JSON over HTTP. The engine treats the backend as an opaque
// collaborator; local stores stay authoritative for anything created
// client-side.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TokenProvider returns the current bearer token for the signed-in session.
// A nil provider means calls go out unauthenticated. Token contents are
// never inspected, only forwarded.
type TokenProvider func(ctx context.Context) (string, error)

// APIError carries a non-2xx backend response: the HTTP status and the
// parsed body. A body that fails to parse as JSON becomes an empty object.
type APIError struct {
	Status int
	Body   map[string]any
}

func (e *APIError) Error() string {
	if msg, ok := e.Body["message"].(string); ok && msg != "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, msg)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

const (
	requestTimeout = 10 * time.Second
	getAttempts    = 3
	retryBackoff   = 250 * time.Millisecond
)

// Client is the Bridge backend API client.
type Client struct {
	baseURL string
	httpc   *http.Client
	tokens  TokenProvider
	logger  *zap.Logger
}

// New returns a client for the backend at baseURL. tokens may be nil for
// unauthenticated use.
func New(baseURL string, tokens TokenProvider, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: requestTimeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// URL joins path onto the configured base URL.
func (c *Client) URL(path string) string {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}

type requestSpec struct {
	method         string
	path           string
	body           any
	idempotencyKey string
	retryable      bool
}

func (c *Client) do(ctx context.Context, spec requestSpec, out any) error {
	var payload []byte
	if spec.body != nil {
		var err error
		payload, err = json.Marshal(spec.body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
	}

	attempts := 1
	if spec.retryable {
		attempts = getAttempts
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(retryBackoff * time.Duration(attempt)):
			}
		}

		err := c.once(ctx, spec, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err

		// Client-level errors (4xx) will not change on retry.
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status < 500 {
			return err
		}
		if attempt < attempts-1 {
			c.logger.Warn("backend request failed, retrying",
				zap.String("path", spec.path), zap.Int("attempt", attempt+1), zap.Error(err))
		}
	}
	return lastErr
}

func (c *Client) once(ctx context.Context, spec requestSpec, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, spec.method, c.URL(spec.path), body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if spec.idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", spec.idempotencyKey)
	}
	if c.tokens != nil {
		token, err := c.tokens(ctx)
		if err != nil {
			return fmt.Errorf("get session token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	parsed := map[string]any{}
	if len(raw) > 0 {
		// An unparsable body degrades to an empty object, never a failure.
		_ = json.Unmarshal(raw, &parsed)
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &APIError{Status: res.StatusCode, Body: parsed}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			// Same degradation on success: callers get the zero value.
			c.logger.Warn("backend response was not valid JSON", zap.String("path", spec.path))
		}
	}
	return nil
}
