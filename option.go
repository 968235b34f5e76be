package cmdline

import (
	"cmp"
	"strings"
	"unicode"

	"github.com/napalu/cmdline/errs"
)

// NewOption creates an Option without validator or handler. Use NewOpt to configure an Option using
// option functions.
func NewOption(short rune, long string, arity Arity, description string) *Option {
	return &Option{
		Short:       short,
		Long:        long,
		Arity:       arity,
		Description: description,
	}
}

// ArgumentRequired returns true when the option fails to parse without an argument
func (o *Option) ArgumentRequired() bool {
	return o.Arity == ArgumentRequired
}

// ArgumentOptional returns true when the option accepts but does not need an argument
func (o *Option) ArgumentOptional() bool {
	return o.Arity == ArgumentOptional
}

// SetValidator replaces the argument validator. A nil validator accepts every argument.
func (o *Option) SetValidator(validator ArgumentValidator) {
	o.validator = validator
}

// SetHandler replaces the handler called when the option is matched
func (o *Option) SetHandler(handler OptionHandler) {
	o.handler = handler
}

// HasValidator returns true when a validator is set
func (o *Option) HasValidator() bool {
	return o.validator != nil
}

// HasHandler returns true when a handler is set
func (o *Option) HasHandler() bool {
	return o.handler != nil
}

// Handle validates argument and calls the handler. Validation only happens when present is true and the
// option takes an argument; a rejected argument returns errs.ErrInvalidArgument. Handler errors are
// wrapped in errs.ErrOptionHandler.
func (o *Option) Handle(argument string, present bool) error {
	if present && (o.ArgumentOptional() || o.ArgumentRequired()) && o.validator != nil {
		if !o.validator(argument) {
			return errs.ErrInvalidArgument.WithArgs(argument, o)
		}
	}

	if o.handler == nil {
		return nil
	}
	if err := o.handler(o, argument, present); err != nil {
		return errs.ErrOptionHandler.WithArgs(o).Wrap(err)
	}

	return nil
}

// Equal returns true when both options share a short spelling or share a long spelling.
// Two options are equal when either spelling collides, so Equal is not transitive.
func (o *Option) Equal(other *Option) bool {
	if o == nil || other == nil {
		return o == other
	}

	return (o.Short != 0 && o.Short == other.Short) || (o.Long != "" && o.Long == other.Long)
}

// Compare orders options by their primary spelling (the short spelling when present, the long one otherwise),
// then by long spelling. A short-only option sorts before a long-only option starting with the same character.
func (o *Option) Compare(other *Option) int {
	if c := strings.Compare(o.primary(), other.primary()); c != 0 {
		return c
	}
	if c := strings.Compare(o.Long, other.Long); c != 0 {
		return c
	}

	return cmp.Compare(o.Short, other.Short)
}

func (o *Option) primary() string {
	if o.Short != 0 {
		return string(o.Short)
	}

	return o.Long
}

// String returns the dashed spellings of the option, such as "-o, --output"
func (o *Option) String() string {
	switch {
	case o.Short != 0 && o.Long != "":
		return "-" + string(o.Short) + ", --" + o.Long
	case o.Short != 0:
		return "-" + string(o.Short)
	default:
		return "--" + o.Long
	}
}

// Validate checks the option can be registered: it returns the configuration error kept by NewOpt, if any,
// then checks the option has at least one spelling, a description and a known Arity. The short spelling cannot be '-' or a space and the long spelling cannot start with '-'.
func (o *Option) Validate() error {
	if o.err != nil {
		return o.err
	}
	if o.Short == 0 && o.Long == "" {
		return errs.ErrOptionWithoutName
	}
	if o.Short != 0 && (o.Short == '-' || !unicode.IsGraphic(o.Short) || unicode.IsSpace(o.Short)) {
		return errs.ErrInvalidShortOption.WithArgs(o.Short)
	}
	if strings.HasPrefix(o.Long, "-") || strings.ContainsFunc(o.Long, unicode.IsSpace) {
		return errs.ErrInvalidLongOption.WithArgs(o.Long)
	}
	if o.Description == "" {
		return errs.ErrEmptyDescription.WithArgs(o)
	}
	if !o.Arity.valid() {
		return errs.ErrInvalidArity.WithArgs(int(o.Arity), o)
	}

	return nil
}
