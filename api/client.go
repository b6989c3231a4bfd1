package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rentora/config"
	"rentora/session"
	"rentora/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Error is the typed failure returned for non-2xx responses. Message carries
// the server's message field verbatim when one is present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Doer is the request surface the data services depend on.
type Doer interface {
	Get(ctx context.Context, path string, out interface{}) error
	Post(ctx context.Context, path string, body, out interface{}) error
	Patch(ctx context.Context, path string, body, out interface{}) error
}

// Client wraps the platform's JSON-over-HTTPS backend: bearer injection,
// response unwrapping, typed errors, request correlation IDs and outbound
// throttling.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     session.TokenSource
	Limiter    *rate.Limiter
	Logger     *zap.Logger
}

// NewClient builds a Client from AppConfig. Tokens may be nil for fully
// anonymous usage.
func NewClient(tokens session.TokenSource) *Client {
	perMin := config.AppConfig.MaxRequestsPerMin
	if perMin <= 0 {
		perMin = 100
	}
	return &Client{
		BaseURL:    strings.TrimRight(config.AppConfig.APIBaseURL, "/"),
		HTTPClient: &http.Client{Timeout: config.APITimeout()},
		Tokens:     tokens,
		Limiter:    rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMin)), perMin),
		Logger:     utils.GetLogger(),
	}
}

// Get issues a GET request and decodes the (possibly enveloped) response into out.
func (c *Client) Get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, body, out)
}

// envelope is the optional response wrapper some backend endpoints use.
type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limiter wait: %w", err)
		}
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Absent tokens omit the header rather than blocking the call; the
	// backend is responsible for rejecting unauthenticated requests.
	if c.Tokens != nil {
		if token := c.Tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &Error{StatusCode: resp.StatusCode, Message: errorMessage(raw, resp.StatusCode)}
		if c.Logger != nil {
			c.Logger.Warn("backend request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.String("message", apiErr.Message),
			)
		}
		return apiErr
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return unwrap(raw, out)
}

// unwrap decodes a response that is either the bare payload or wrapped in
// {status, message, data}. Both shapes are in active use on the backend.
func unwrap(raw []byte, out interface{}) error {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode enveloped response: %w", err)
		}
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the server's message out of an error body, falling back
// to the raw body and finally the status text.
func errorMessage(raw []byte, status int) string {
	var env envelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Message != "" {
		return env.Message
	}
	if msg := strings.TrimSpace(string(raw)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
