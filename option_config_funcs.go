package cmdline

import (
	"github.com/napalu/cmdline/validation"
)

// NewOpt convenience initialization method to configure an Option. Configuration stops at the first
// error, which is kept on the Option and returned by Validate, so registering the Option reports it.
func NewOpt(configs ...ConfigureOptionFunc) *Option {
	option := &Option{}
	var err error
	for _, config := range configs {
		config(option, &err)
		if err != nil {
			option.err = err
			break
		}
	}

	return option
}

// Set configures the Option instance with the provided ConfigureOptionFunc(s),
// and returns an error if a configuration results in an error.
//
// Usage example:
//
//	opt := &Option{}
//	err := opt.Set(
//	    WithLong("output"),
//	    WithArity(ArgumentRequired),
//	    WithOptionDescription("output file"),
//	)
//	if err != nil {
//	    // handle error
//	}
func (o *Option) Set(configs ...ConfigureOptionFunc) error {
	var err error
	for _, config := range configs {
		config(o, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// WithShort sets the single-character spelling used as -x
func WithShort(short rune) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Short = short
	}
}

// WithLong sets the spelling used as --name
func WithLong(long string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Long = long
	}
}

// WithArity sets whether the option takes no, an optional or a required argument
func WithArity(arity Arity) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Arity = arity
	}
}

// WithOptionDescription sets the description shown in usage output
func WithOptionDescription(description string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.Description = description
	}
}

// WithValidator sets the argument validator. Predicates from the validation package can be used directly:
//
//	NewOpt(WithLong("jobs"), WithArity(ArgumentRequired), WithValidator(validation.Range(1, 64)))
func WithValidator(validator ArgumentValidator) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.validator = validator
	}
}

// WithPatternValidator accepts arguments matching the regular expression pattern. An invalid pattern
// is reported as a configuration error.
func WithPatternValidator(pattern string) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		validator, e := validation.Regex(pattern)
		if e != nil {
			*err = e
			return
		}
		option.validator = validator
	}
}

// WithHandler sets the function called when the option is matched
func WithHandler(handler OptionHandler) ConfigureOptionFunc {
	return func(option *Option, err *error) {
		option.handler = handler
	}
}
