package google

import "fmt"

// ConfigError reports a credential that was absent when the client was
// constructed. It is returned before any network call is attempted.
type ConfigError struct {
	Key string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required configuration %q", e.Key)
}

// ProviderError wraps a failed exchange with a provider API: transport
// failures, non-2xx statuses and unparseable bodies.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// DataShapeError reports a well-formed provider response that lacks the
// sub-structure the caller asked for, e.g. a place without opening hours.
type DataShapeError struct {
	Provider string
	Field    string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("%s response has no %s", e.Provider, e.Field)
}
