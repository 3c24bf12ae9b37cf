package form

import "errors"

var (
	// ErrUnknownField is returned when a value targets an id that was never
	// registered.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrDuplicateField is returned when a field id is registered twice.
	ErrDuplicateField = errors.New("form: field already registered")
	// ErrUndeclaredOption is returned when a select receives a value outside
	// its declared options.
	ErrUndeclaredOption = errors.New("form: value is not a declared option")
	// ErrValidationFailed signals that submission was blocked by field errors.
	// Callers read the messages through Errors or ErrorText.
	ErrValidationFailed = errors.New("form: validation failed")
	// ErrNoHandler is returned when HandleSubmit is called without a handler.
	ErrNoHandler = errors.New("form: submit handler is required")
)
