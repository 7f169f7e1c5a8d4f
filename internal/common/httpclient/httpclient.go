// Package httpclient provides a configurable HTTP client for calling
// upstream REST services. It handles request building, caller identity
// forwarding, and error handling for server responses. The package requires
// a Configurator implementation for server configuration.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"
)

// UserIDHeader is the request header carrying the caller's identity when
// forwarded to upstream services.
const UserIDHeader = "X-User-ID"

// Configurator defines the interface for providing upstream server
// configuration.
type Configurator interface {
	GetServerURL() string
	GetTimeout() time.Duration
}

// ServerError represents an error response body from an upstream server
// with a result code and error message.
type ServerError struct {
	Result int    `json:"result"` // result code from server
	Error  string `json:"error"`  // error message from server
}

// HTTPError represents a non-success response from an upstream server.
type HTTPError struct {
	StatusCode int    // HTTP status code of the error
	Message    string // error message or response body
}

// Error implements the error interface for HTTPError.
func (e *HTTPError) Error() string {
	return e.Message
}

// HTTPClient is a client for making HTTP requests to an upstream REST
// service. It handles identity forwarding, request building, and response
// processing.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
}

// NewClient creates a new HTTP client using the provided configuration.
// The client timeout is taken from the Configurator; a zero timeout leaves
// cancellation entirely to the request context.
func NewClient(config Configurator) *HTTPClient {
	return &HTTPClient{
		config: config,
		httpClient: &http.Client{
			Timeout: config.GetTimeout(),
		},
	}
}

// RequestOptions contains options for making HTTP requests.
// Method and Path are required; the rest are optional.
type RequestOptions struct {
	Method      string            // HTTP method (GET, POST, DELETE)
	Path        string            // API endpoint path
	QueryParams map[string]string // optional query parameters
	Body        []byte            // optional request body
	UserID      string            // caller identity, forwarded as X-User-ID
}

// DoRequest makes an HTTP request with the given options and returns the
// response body. Responses with status >= 400 are returned as *HTTPError,
// using the server's error envelope when the body carries one.
func (c *HTTPClient) DoRequest(ctx context.Context, opts RequestOptions) ([]byte, error) {
	u, err := url.Parse(c.config.GetServerURL())
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %v", err)
	}
	u.Path = path.Join(u.Path, opts.Path)

	q := u.Query()
	for k, v := range opts.QueryParams {
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()

	bodyReader := bytes.NewBuffer(opts.Body)
	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if opts.UserID != "" {
		req.Header.Set(UserIDHeader, opts.UserID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode >= 400 {
		var serverErr ServerError
		if err := json.Unmarshal(body, &serverErr); err == nil && serverErr.Error != "" {
			return nil, &HTTPError{
				StatusCode: resp.StatusCode,
				Message:    serverErr.Error,
			}
		}
		return nil, &HTTPError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return body, nil
}
