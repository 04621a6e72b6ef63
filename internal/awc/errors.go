package awc

import "fmt"

// UnavailableError reports that aviationweather.gov could not be reached:
// connection failure, DNS failure, or a request that exceeded the client
// timeout. The caller may retry; this client never does.
type UnavailableError struct {
	Endpoint string
	Timeout  bool
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("request to %s timed out: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("aviationweather.gov unreachable for %s: %v", e.Endpoint, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// RejectedError reports a non-2xx status from the upstream API. Detail holds
// a truncated copy of the response body.
type RejectedError struct {
	Endpoint   string
	StatusCode int
	Detail     string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("aviationweather.gov returned status %d for %s: %s", e.StatusCode, e.Endpoint, e.Detail)
}

// BadRequest reports whether the upstream flagged the request parameters
// themselves as invalid.
func (e *RejectedError) BadRequest() bool { return e.StatusCode == 400 }

// PayloadError reports a 2xx response whose body did not parse in the format
// the content type promised.
type PayloadError struct {
	Endpoint    string
	ContentType string
	Err         error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("unreadable %s payload from %s: %v", e.ContentType, e.Endpoint, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }
