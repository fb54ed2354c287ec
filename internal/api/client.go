// Package api is the JSON client for the remote marketplace backend. The
// gateway owns no data: every listing, amenity and user read or write in this
// repository goes through this client.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"roomNest/internal/credentials"
)

// DefaultTimeout bounds every backend call unless the caller's context is
// already tighter. Cancellation is cooperative: the request is aborted, the
// backend finishes or not on its own.
const DefaultTimeout = 10 * time.Second

// Error is the uniform failure shape for backend calls: non-2xx responses,
// transport failures and timeouts all surface as *Error.
type Error struct {
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Details json.RawMessage `json:"details,omitempty"`
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("api: %s (status %d)", e.Message, e.Status)
	}
	return fmt.Sprintf("api: %s", e.Message)
}

// Timeout reports whether the failure was a cancelled or timed-out call
// rather than a backend verdict.
func (e *Error) Timeout() bool {
	return e.Status == 0 && strings.Contains(e.Message, context.DeadlineExceeded.Error())
}

// IsStatus reports whether err is a backend Error carrying the given HTTP
// status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      credentials.Provider
	timeout    time.Duration
}

// NewClient builds a backend client. creds may be nil when the caller never
// sets IncludeAuth.
func NewClient(baseURL string, httpClient *http.Client, creds credentials.Provider) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		creds:      creds,
		timeout:    DefaultTimeout,
	}
}

type RequestOptions struct {
	Params      url.Values
	Body        interface{}
	IncludeAuth bool
}

// Do performs a single attempt (no retry) against the backend, decodes a JSON
// response into out when out is non-nil, and returns the HTTP status. Any
// failure is a *Error. Absence of a token under IncludeAuth just omits the
// Authorization header.
func (c *Client) Do(ctx context.Context, method, path string, opts RequestOptions, out interface{}) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(opts.Params) > 0 {
		endpoint += "?" + opts.Params.Encode()
	}

	var body io.Reader
	if opts.Body != nil {
		data, err := json.Marshal(opts.Body)
		if err != nil {
			return 0, &Error{Message: fmt.Sprintf("encode request body: %v", err)}
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return 0, &Error{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Accept", "application/json")
	if opts.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if opts.IncludeAuth && c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return 0, &Error{Message: fmt.Sprintf("read credentials: %v", err)}
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &Error{Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, &Error{Message: fmt.Sprintf("read response: %v", err), Status: resp.StatusCode}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, shapeError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return resp.StatusCode, &Error{Message: fmt.Sprintf("decode response: %v", err), Status: resp.StatusCode}
		}
	}
	return resp.StatusCode, nil
}

// shapeError keeps whatever structure the backend sent. A JSON body with a
// message field becomes the message; anything else is carried verbatim in
// Details.
func shapeError(status int, body []byte) *Error {
	apiErr := &Error{Status: status, Message: http.StatusText(status)}
	if len(body) == 0 {
		return apiErr
	}

	var parsed struct {
		Message string          `json:"message"`
		Error   string          `json:"error"`
		Details json.RawMessage `json:"details"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil {
		switch {
		case parsed.Message != "":
			apiErr.Message = parsed.Message
		case parsed.Error != "":
			apiErr.Message = parsed.Error
		}
		if len(parsed.Details) > 0 {
			apiErr.Details = parsed.Details
			return apiErr
		}
	}
	if json.Valid(body) {
		apiErr.Details = json.RawMessage(body)
	} else if quoted, err := json.Marshal(strings.TrimSpace(string(body))); err == nil {
		apiErr.Details = quoted
	}
	return apiErr
}

// Get is shorthand for a JSON GET.
func (c *Client) Get(ctx context.Context, path string, params url.Values, includeAuth bool, out interface{}) error {
	_, err := c.Do(ctx, http.MethodGet, path, RequestOptions{Params: params, IncludeAuth: includeAuth}, out)
	return err
}

// Post is shorthand for a JSON POST.
func (c *Client) Post(ctx context.Context, path string, body interface{}, includeAuth bool, out interface{}) error {
	_, err := c.Do(ctx, http.MethodPost, path, RequestOptions{Body: body, IncludeAuth: includeAuth}, out)
	return err
}
