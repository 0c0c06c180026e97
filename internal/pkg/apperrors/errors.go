// Package apperrors defines the error taxonomy shared by the dispatch
// coordinator's layers. Repositories and usecases wrap these sentinels
// with fmt.Errorf("...: %w", ...) and handlers map them to HTTP statuses
// with errors.Is.
package apperrors

import "errors"

var (
	// ErrInvalidLocation indicates missing or non-finite origin coordinates
	ErrInvalidLocation = errors.New("invalid location coordinates")

	// ErrValidation indicates malformed or missing request input other
	// than coordinates
	ErrValidation = errors.New("validation failed")

	// ErrConflict indicates an accept or assign attempt on a slot that is
	// already claimed, or a transition the current status does not allow
	ErrConflict = errors.New("request state conflict")

	// ErrForbidden indicates the actor is not entitled to act on this
	// request or worker
	ErrForbidden = errors.New("actor not permitted for this request")

	// ErrNotFound indicates an unknown request, worker or mechanic ID
	ErrNotFound = errors.New("resource not found")

	// ErrTimeout indicates a network or geolocation timeout
	ErrTimeout = errors.New("operation timed out")

	// ErrTransient indicates a retryable network failure
	ErrTransient = errors.New("transient failure")
)

// IsRetryable reports whether an error should be retried by polling
// clients. Validation and authorization failures never are.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTransient) || errors.Is(err, ErrTimeout)
}
