// Package api is the typed HTTP client for the remote content API. Every
// response arrives in a {success, data, error} envelope; callers get the data
// payload or an *APIError.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// FieldError is a single field-level validation failure reported by the API.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorPayload is the structured error body inside a failed envelope.
type ErrorPayload struct {
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// APIError is returned for non-2xx responses and for envelopes reporting
// success: false.
type APIError struct {
	Status     int
	StatusText string
	Details    *ErrorPayload
}

func (e *APIError) Error() string {
	if e.Details != nil && e.Details.Message != "" {
		return fmt.Sprintf("api error: %d %s: %s", e.Status, e.StatusText, e.Details.Message)
	}
	return fmt.Sprintf("api error: %d %s", e.Status, e.StatusText)
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorPayload   `json:"error,omitempty"`
}

// Client is a content API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new content API client. The timeout bounds every
// request in addition to any deadline on the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) buildURL(path string, params url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// get performs a GET request and decodes the envelope's data into out.
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.buildURL(path, params), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// post performs a POST request with a JSON body and decodes the envelope's
// data into out.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.buildURL(path, nil), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, StatusText: http.StatusText(resp.StatusCode)}
		// The error body is best-effort; a non-JSON body still yields a
		// usable status error.
		var env envelope
		if jsonErr := json.Unmarshal(respBody, &env); jsonErr == nil {
			apiErr.Details = env.Error
		}
		return apiErr
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("unmarshal envelope: %w", err)
	}
	if !env.Success {
		return &APIError{
			Status:     http.StatusBadRequest,
			StatusText: "request failed",
			Details:    env.Error,
		}
	}

	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("unmarshal data: %w", err)
		}
	}
	return nil
}
