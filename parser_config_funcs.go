package cmdline

import (
	"io"
	"log/slog"

	"github.com/napalu/cmdline/util"
)

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithAppName("make-it"),
//		WithDescription("builds things"),
//		WithGlobalOption(NewOption('v', "verbose", NoArgument, "Verbose output")),
//		WithCommand(NewCommand(
//			WithName("build"),
//			WithCommandDescription("build the inputs"),
//			WithOptions(NewOption('o', "output", ArgumentRequired, "Output file")),
//			WithProcess(build))))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser("", "", "")

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithAppName sets the application name shown in usage output and used by completion scripts
func WithAppName(appName string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.appName = appName
	}
}

// WithDescription sets the text printed below the usage line
func WithDescription(description string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.description = description
	}
}

// WithHelpFooter sets the text printed at the end of usage output
func WithHelpFooter(footer string) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.helpFooter = footer
	}
}

// WithCommand is a wrapper for AddCommand
func WithCommand(cmd *Command) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddCommand(cmd)
	}
}

// WithGlobalOption is a wrapper for AddGlobalOption
func WithGlobalOption(option *Option) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		*err = parser.AddGlobalOption(option)
	}
}

// WithStdout is a wrapper for SetStdout
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetStdout(w)
	}
}

// WithStderr is a wrapper for SetStderr
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetStderr(w)
	}
}

// WithLogger is a wrapper for SetLogger
func WithLogger(logger *slog.Logger) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetLogger(logger)
	}
}

// WithRenderer is a wrapper for SetRenderer
func WithRenderer(renderer Renderer) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetRenderer(renderer)
	}
}

// WithColor is a wrapper for SetColor
func WithColor(mode ColorMode) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetColor(mode)
	}
}

// WithTerminal is a wrapper for SetTerminal
func WithTerminal(terminal util.Terminal) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetTerminal(terminal)
	}
}

// WithHelpExitCode is a wrapper for SetHelpExitCode
func WithHelpExitCode(code int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetHelpExitCode(code)
	}
}

// WithErrorExitCode is a wrapper for SetErrorExitCode
func WithErrorExitCode(code int) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetErrorExitCode(code)
	}
}

// WithExitFunc is a wrapper for SetExitFunc
func WithExitFunc(exit func(code int)) ConfigureParserFunc {
	return func(parser *Parser, err *error) {
		parser.SetExitFunc(exit)
	}
}

// SetStdout sets the writer used for usage output. Defaults to os.Stdout.
func (p *Parser) SetStdout(w io.Writer) {
	p.stdout = w
}

// SetStderr sets the writer ParseOrExit prints errors to. Defaults to os.Stderr.
func (p *Parser) SetStderr(w io.Writer) {
	p.stderr = w
}

// SetLogger sets the logger receiving debug records of the scan. A nil logger discards records.
func (p *Parser) SetLogger(logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	p.logger = logger
}

// SetRenderer replaces the renderer used for usage lines. A nil renderer restores the DefaultRenderer.
func (p *Parser) SetRenderer(renderer Renderer) {
	if renderer == nil {
		renderer = NewRenderer(p)
	}
	p.renderer = renderer
}

// SetColor sets whether usage headings are colored
func (p *Parser) SetColor(mode ColorMode) {
	p.colorMode = mode
}

// SetTerminal replaces the terminal detection used by ColorAuto
func (p *Parser) SetTerminal(terminal util.Terminal) {
	p.terminal = terminal
}

// SetHelpExitCode sets the exit code ParseOrExit uses after printing help
func (p *Parser) SetHelpExitCode(code int) {
	p.helpExitCode = code
}

// SetErrorExitCode sets the exit code ParseOrExit uses after a parse error
func (p *Parser) SetErrorExitCode(code int) {
	p.errorExitCode = code
}

// SetExitFunc replaces os.Exit in ParseOrExit
func (p *Parser) SetExitFunc(exit func(code int)) {
	p.exitFunc = exit
}
