// Package errs contains the error values returned by the cmdline parser.
// This file contains the message keys for all of them.
package errs

const (
	prefixKey = "cmdline"
)

// Error prefixes
const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
	SetupErrorPathKey = ErrorPrefixKey + ".setup"
)

// Parse errors raised while scanning the command line
const (
	ErrUnrecognizedOptionKey = ParseErrorPathKey + ".unrecognized_option"
	ErrArgumentMissingKey    = ParseErrorPathKey + ".argument_missing"
	ErrInvalidArgumentKey    = ParseErrorPathKey + ".invalid_argument"
	ErrInvalidCommandKey     = ParseErrorPathKey + ".invalid_command"
	ErrNoCommandSpecifiedKey = ParseErrorPathKey + ".no_command_specified"
	ErrSplitArgumentsKey     = ParseErrorPathKey + ".split_arguments"
)

// Setup errors raised while registering commands and options
const (
	ErrNilOptionKey            = SetupErrorPathKey + ".nil_option"
	ErrNilCommandKey           = SetupErrorPathKey + ".nil_command"
	ErrOptionWithoutNameKey    = SetupErrorPathKey + ".option_without_name"
	ErrInvalidShortOptionKey   = SetupErrorPathKey + ".invalid_short_option"
	ErrInvalidLongOptionKey    = SetupErrorPathKey + ".invalid_long_option"
	ErrEmptyDescriptionKey     = SetupErrorPathKey + ".empty_description"
	ErrInvalidArityKey         = SetupErrorPathKey + ".invalid_arity"
	ErrOptionAlreadyExistsKey  = SetupErrorPathKey + ".option_already_exists"
	ErrEmptyCommandNameKey     = SetupErrorPathKey + ".empty_command_name"
	ErrCommandAlreadyExistsKey = SetupErrorPathKey + ".command_already_exists"
	ErrUnsupportedShellKey     = SetupErrorPathKey + ".unsupported_shell"
)

// Callback errors
const (
	ErrOptionHandlerKey   = ErrorPrefixKey + ".option_handler"
	ErrCommandCallbackKey = ErrorPrefixKey + ".command_callback"
)
