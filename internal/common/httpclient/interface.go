package httpclient

import (
	"context"
)

// Caller defines the interface for HTTP client implementations. Upstream
// service clients depend on this interface so tests can substitute fakes.
type Caller interface {
	// DoRequest makes an HTTP request with the given options.
	// Returns the response body and any error that occurred.
	DoRequest(ctx context.Context, opts RequestOptions) ([]byte, error)
}

// Compile-time check that HTTPClient satisfies the Caller interface.
var _ Caller = &HTTPClient{}
