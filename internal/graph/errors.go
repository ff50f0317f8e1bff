package graph

import "fmt"

// ConfigurationError reports an unusable client configuration, detected
// before any network activity.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "configuration error: " + e.Reason }

// TransportError reports a network-level failure reaching the API.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// APIError captures a non-2xx response in full so the remote-side rejection
// can be diagnosed. The body is read completely before being surfaced.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("graph api returned %s: %s", e.Status, e.Body)
}
