package sheets

import "fmt"

// ConfigurationError reports missing or malformed sink configuration:
// absent sheet id or tab, or key material that is not parseable service
// account JSON. It indicates a deployment defect and is not retryable.
type ConfigurationError struct {
	Field string
	Cause error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("sheets: invalid configuration %s: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("sheets: missing configuration %s", e.Field)
}

func (e *ConfigurationError) Unwrap() error { return e.Cause }

// SinkUnavailableError reports that authentication was rejected, the
// spreadsheet id did not resolve, or the tab does not exist. The remote
// cause stays attached for inspection.
type SinkUnavailableError struct {
	Cause error
}

func (e *SinkUnavailableError) Error() string {
	return fmt.Sprintf("sheets: sink unavailable: %v", e.Cause)
}

func (e *SinkUnavailableError) Unwrap() error { return e.Cause }

// WriteError reports a failed append after the sink resolved successfully
// (transport failure, remote-side error, quota, timeout). The caller may
// retry; this package never does.
type WriteError struct {
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("sheets: append failed: %v", e.Cause)
}

func (e *WriteError) Unwrap() error { return e.Cause }
