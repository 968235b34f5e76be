package errs

import (
	"errors"
	"fmt"
)

// Parse errors
var (
	ErrUnrecognizedOption = NewError(ErrUnrecognizedOptionKey)
	ErrArgumentMissing    = NewError(ErrArgumentMissingKey)
	ErrInvalidArgument    = NewError(ErrInvalidArgumentKey)
	ErrInvalidCommand     = NewError(ErrInvalidCommandKey)
	ErrNoCommandSpecified = NewError(ErrNoCommandSpecifiedKey)
	ErrSplitArguments     = NewError(ErrSplitArgumentsKey)
)

// Setup errors
var (
	ErrNilOption            = NewError(ErrNilOptionKey)
	ErrNilCommand           = NewError(ErrNilCommandKey)
	ErrOptionWithoutName    = NewError(ErrOptionWithoutNameKey)
	ErrInvalidShortOption   = NewError(ErrInvalidShortOptionKey)
	ErrInvalidLongOption    = NewError(ErrInvalidLongOptionKey)
	ErrEmptyDescription     = NewError(ErrEmptyDescriptionKey)
	ErrInvalidArity         = NewError(ErrInvalidArityKey)
	ErrOptionAlreadyExists  = NewError(ErrOptionAlreadyExistsKey)
	ErrEmptyCommandName     = NewError(ErrEmptyCommandNameKey)
	ErrCommandAlreadyExists = NewError(ErrCommandAlreadyExistsKey)
	ErrUnsupportedShell     = NewError(ErrUnsupportedShellKey)
)

// Callback errors
var (
	ErrOptionHandler   = NewError(ErrOptionHandlerKey)
	ErrCommandCallback = NewError(ErrCommandCallbackKey)
)

// Error is a keyed error with optional format arguments and error wrapping support.
// Copies made with WithArgs or Wrap keep the sentinel of the error they were made from,
// so errors.Is matches them against the package-level values.
//
// Example usage:
//
//	err := ErrInvalidCommand.WithArgs("frobnicate")
//	errors.Is(err, ErrInvalidCommand) // true
type Error struct {
	// The sentinel error value for comparison with errors.Is
	sentinel error
	// The message key
	key string
	// Optional format arguments
	args []interface{}
	// Optional wrapped error
	wrapped error
}

// NewError creates a new sentinel error for a message key
func NewError(key string) *Error {
	return &Error{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the provider's message, formatted with args if provided
func (e *Error) Error() string {
	msg := currentProvider().GetMessage(e.key)
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}
	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *Error) WithArgs(args ...interface{}) *Error {
	return &Error{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a copy of the error wrapping err
func (e *Error) Wrap(err error) *Error {
	return &Error{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.sentinel == t.sentinel
	}
	return target == e.sentinel
}

// Key returns the message key
func (e *Error) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *Error) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.wrapped
}

// Offending returns the first format argument of the outermost *Error in err's chain,
// which for parse errors is the token or name that caused the failure.
func Offending(err error) string {
	var e *Error
	if !errors.As(err, &e) || len(e.args) == 0 {
		return ""
	}

	return fmt.Sprint(e.args[0])
}
