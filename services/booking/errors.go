package booking

import "fmt"

// ValidationError covers locally recoverable refusals: picking a blocked day,
// submitting before the selection locks, or addressing a missing session. The
// UI prompts the user to fix the selection; nothing upstream is involved.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
