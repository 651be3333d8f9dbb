package booking

import "fmt"

// ConflictError reports that a requested slot is no longer available. It is a
// recoverable, user-facing condition, not a system fault.
type ConflictError struct {
	Code    string
	Message string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewConflictError(msg string) error {
	return &ConflictError{
		Code:    "slotConflict",
		Message: msg,
	}
}

// ValidationError reports malformed input caught before the availability
// engine runs: bad dates, unknown timezones, inverted clock ranges.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "invalidInput",
		Message: msg,
	}
}
