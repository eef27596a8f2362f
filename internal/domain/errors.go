package domain

import "fmt"

// ValidationError reports bad input shape or range. It is surfaced
// immediately and never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// AuthError reports a missing credential or a failed session-token
// refresh. Fatal for any path that requires a token.
type AuthError struct {
	Message string
	Cause   error
}

func (e *AuthError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return e.Cause }

// DataError reports an empty result set for otherwise valid inputs,
// like no OHLC data across batches or an option chain with zero rows.
type DataError struct {
	Message string
}

func (e *DataError) Error() string { return e.Message }

func Dataf(format string, args ...any) error {
	return &DataError{Message: fmt.Sprintf(format, args...)}
}
