// Package apperrors provides the application error type used across the
// service. It extends the standard error interface with status codes and
// error chaining so callers can branch on error kind with errors.Is while
// handlers derive HTTP responses from the same value.
package apperrors

// Error is the interface implemented by all application errors. Methods
// return Error so call sites can chain derivations from sentinel values.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // derives a fresh error using current as template
	Msg(msg string) Error                  // new message, wraps the original
	MsgErr(msg string, err ...error) Error // new message, wraps original plus extra errors
	Err(err ...error) Error                // attaches additional errors, message unchanged
	SetExpandError(bool) Error             // controls whether ErrorAll includes wrapped errors
	SetStatusCode(int) Error               // sets the HTTP status code
	StatusCode() int                       // returns the HTTP status code
	ErrorAll() string                      // full message including wrapped errors
	UnwrapAll() []error                    // all wrapped errors
}
