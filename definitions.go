package cmdline

import (
	"io"
	"log/slog"

	"github.com/napalu/cmdline/util"
	"github.com/tidwall/btree"
)

// UsageColumnIndent is the number of spaces between the longest label and the description column in usage output
const UsageColumnIndent = 4

const (
	helpShort       = 'h'
	helpLong        = "help"
	helpDescription = "Prints usage information"
)

// Arity defines whether an Option takes no argument, an optional argument or a required argument
type Arity int

const (
	// NoArgument denotes an Option which never consumes an argument
	NoArgument Arity = iota
	// ArgumentOptional denotes an Option which consumes an argument when one follows
	ArgumentOptional
	// ArgumentRequired denotes an Option which fails to parse without an argument
	ArgumentRequired
)

func (a Arity) String() string {
	switch a {
	case NoArgument:
		return "none"
	case ArgumentOptional:
		return "optional"
	case ArgumentRequired:
		return "required"
	}

	return "unknown"
}

func (a Arity) valid() bool {
	return a >= NoArgument && a <= ArgumentRequired
}

// ArgumentValidator returns false when argument is not acceptable for the Option it is set on
type ArgumentValidator func(argument string) bool

// OptionHandler is called when an Option is matched on the command line. present is false when
// the Option takes an optional argument and none was given.
type OptionHandler func(option *Option, argument string, present bool) error

// ProcessFunc is called once for the Command selected on the command line, after all options were handled.
// inputs holds the positional arguments which followed the command.
type ProcessFunc func(command *Command, inputs []string) error

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(parser *Parser, err *error)

// ConfigureOptionFunc is used when defining Option fields
type ConfigureOptionFunc func(option *Option, err *error)

// ConfigureCommandFunc is used when defining Command fields
type ConfigureCommandFunc func(command *Command, err *error)

// Status tells the caller how Parse finished
type Status int

const (
	// Completed means a command was selected and processed
	Completed Status = iota
	// HelpRequested means -h or --help was given and usage was printed. Result.Command is set
	// when the help was scoped to a command.
	HelpRequested
	// UsageShown means no arguments were given and the full usage was printed
	UsageShown
)

func (s Status) String() string {
	switch s {
	case Completed:
		return "completed"
	case HelpRequested:
		return "help requested"
	case UsageShown:
		return "usage shown"
	}

	return "unknown"
}

// Result is returned by Parse when no error occurred
type Result struct {
	Status  Status
	Command *Command
	Inputs  []string
}

// ColorMode controls whether usage headings are colored
type ColorMode int

const (
	// ColorAuto enables color when stdout is a terminal, NO_COLOR is unset and TERM is not dumb
	ColorAuto ColorMode = iota
	// ColorAlways forces color on
	ColorAlways
	// ColorNever forces color off
	ColorNever
)

// Renderer formats the individual lines of usage output
type Renderer interface {
	// OptionUsage renders one option line, aligned on longest (the longest long option name of its set)
	OptionUsage(option *Option, longest int) string
	// CommandUsage renders one command summary line, aligned on longest (the longest command name)
	CommandUsage(command *Command, longest int) string
	// Heading renders a section heading such as "Commands:"
	Heading(text string) string
}

// Option describes a single command-line switch with a short and/or long spelling
type Option struct {
	Short       rune   // zero when the option has no short spelling
	Long        string // empty when the option has no long spelling
	Arity       Arity
	Description string
	validator   ArgumentValidator
	handler     OptionHandler
	err         error // first configuration error from NewOpt
}

// Command is a named unit of work selected by the first plain token on the command line
type Command struct {
	Name        string
	Description string
	Process     ProcessFunc
	options     *optionSet
	err         error // first configuration error from NewCommand
}

// Parser opaque struct holding registered commands and global options
type Parser struct {
	appName        string
	description    string
	helpFooter     string
	commands       *btree.Map[string, *Command]
	globals        *optionSet
	longestCommand int
	helpOption     *Option
	stdout         io.Writer
	stderr         io.Writer
	logger         *slog.Logger
	renderer       Renderer
	colorMode      ColorMode
	terminal       util.Terminal
	helpExitCode   int
	errorExitCode  int
	exitFunc       func(code int)
}
