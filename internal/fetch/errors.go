package fetch

import "fmt"

// ErrorKind classifies fetch failures.
type ErrorKind string

// Fetch failure kinds.
const (
	// KindHTTPStatus means the server answered with a non-2xx status.
	KindHTTPStatus ErrorKind = "http_status"

	// KindTransport covers dial failures, timeouts, and read errors.
	KindTransport ErrorKind = "transport"

	// KindDecode means the response body was not valid UTF-8.
	KindDecode ErrorKind = "decode"
)

// Error is a typed fetch failure. The crawl loop inspects Kind for
// logging; all kinds are handled identically otherwise (attempt
// discarded, crawl continues).
type Error struct {
	// Kind classifies the failure.
	Kind ErrorKind

	// URL is the URL whose fetch failed.
	URL string

	// StatusCode is the HTTP status for KindHTTPStatus, zero otherwise.
	StatusCode int

	// Err is the underlying error, nil for KindHTTPStatus and KindDecode.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindHTTPStatus:
		return fmt.Sprintf("fetch %s: http status %d", e.URL, e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("fetch %s: response is not valid UTF-8", e.URL)
	default:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	}
}

// Unwrap returns the underlying error for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.Err
}
