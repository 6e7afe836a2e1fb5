// Package errs defines the error kinds the indexing and retrieval paths
// distinguish. Callers branch on the kind with errors.As rather than by
// matching message strings: a ProviderError is skippable during indexing, a
// SearchUnavailableError triggers the lexical fallback, a PersistenceError
// always aborts.
package errs

import (
	"errors"
	"fmt"
)

// ProviderError reports a failure of an external service (scripture text or
// embedding provider).
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// NewProviderError wraps err as a failure of the named provider.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// SearchUnavailableError reports that the nearest-neighbor stage could not
// serve a query. Retrieval degrades to lexical search instead of failing.
type SearchUnavailableError struct {
	Err error
}

func (e *SearchUnavailableError) Error() string {
	return fmt.Sprintf("vector search unavailable: %v", e.Err)
}

func (e *SearchUnavailableError) Unwrap() error { return e.Err }

// ValidationError reports malformed input: an empty query, a chapter that
// parses into zero verses, an unknown verse key.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PersistenceError reports that the store was unreachable for a read or
// write. The batch job halts on it; retrieval surfaces it to the caller.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// NewPersistenceError wraps err as a store failure during op.
func NewPersistenceError(op string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Err: err}
}

// IsProvider reports whether err is (or wraps) a ProviderError.
func IsProvider(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// IsSearchUnavailable reports whether err is (or wraps) a SearchUnavailableError.
func IsSearchUnavailable(err error) bool {
	var se *SearchUnavailableError
	return errors.As(err, &se)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsPersistence reports whether err is (or wraps) a PersistenceError.
func IsPersistence(err error) bool {
	var pe *PersistenceError
	return errors.As(err, &pe)
}
