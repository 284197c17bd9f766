package booking

import "errors"

var (
	// ErrHTTPStatus is returned for non-2xx HTTP responses.
	ErrHTTPStatus = errors.New("booking api: unexpected http status")
	// ErrMalformedPayload is returned when the body is not the expected JSON.
	ErrMalformedPayload = errors.New("booking api: malformed payload")
	// ErrUnexpectedStatus is returned when responseStatusCode is not accepted.
	ErrUnexpectedStatus = errors.New("booking api: unexpected response status")
	// ErrRetriesExhausted is the poller's failure signal.
	ErrRetriesExhausted = errors.New("booking api: retries exhausted")
)
