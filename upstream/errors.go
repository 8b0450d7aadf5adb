package upstream

import "fmt"

// ConflictError means the reservation service rejected a booking because the
// requested interval became unavailable between fetch and submit. The caller
// must re-fetch its snapshot and reset the selection.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	if e.Message == "" {
		return "reservation conflict: the selected dates are no longer available"
	}
	return "reservation conflict: " + e.Message
}

// AuthorizationError means the reservation service refused the action for the
// presented token or role.
type AuthorizationError struct {
	Status int
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("reservation service refused authorization (status %d)", e.Status)
}

// NotFoundError means the addressed resource does not exist upstream.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// TransportError wraps network-level failures and unexpected upstream
// statuses. It is surfaced as a generic retryable failure; the gateway never
// retries automatically.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("reservation service unreachable during %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
