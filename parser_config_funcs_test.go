package cmdline

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/napalu/cmdline/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerminal bool

func (f fakeTerminal) IsTerminal(int) bool {
	return bool(f)
}

type upperRenderer struct {
	*DefaultRenderer
}

func (r upperRenderer) Heading(text string) string {
	return "== " + text
}

func TestNewParserWith_StopsAtFirstError(t *testing.T) {
	parser, err := NewParserWith(
		WithCommand(&Command{Name: "run", Description: "Run"}),
		WithCommand(&Command{Name: "run", Description: "Run again"}),
	)

	assert.Nil(t, parser)
	assert.True(t, errors.Is(err, errs.ErrCommandAlreadyExists))

	parser, err = NewParserWith(WithGlobalOption(NewOption('h', "", NoArgument, "Clash")))
	assert.Nil(t, parser)
	assert.True(t, errors.Is(err, errs.ErrOptionAlreadyExists))
}

func TestNewParser_Defaults(t *testing.T) {
	parser := NewParser("app", "desc", "footer")

	assert.Same(t, os.Stdout, parser.stdout)
	assert.Same(t, os.Stderr, parser.stderr)
	assert.NotNil(t, parser.logger)
	assert.IsType(t, &DefaultRenderer{}, parser.renderer)
	assert.Equal(t, ColorAuto, parser.colorMode)
	assert.Equal(t, 1, parser.helpExitCode)
	assert.Equal(t, 1, parser.errorExitCode)
	assert.Equal(t, 'h', parser.HelpOption().Short)
	assert.Equal(t, "help", parser.HelpOption().Long)
	assert.Equal(t, "Prints usage information", parser.HelpOption().Description)
}

func TestWithRenderer(t *testing.T) {
	var out bytes.Buffer
	parser, err := NewParserWith(
		WithAppName("app"),
		WithStdout(&out),
		WithRenderer(upperRenderer{NewRenderer(nil)}),
	)
	require.NoError(t, err)

	parser.PrintUsage()
	assert.Contains(t, out.String(), "== Commands:\n")
	assert.Contains(t, out.String(), "== Global options:\n")

	parser.SetRenderer(nil)
	out.Reset()
	parser.PrintUsage()
	assert.Contains(t, out.String(), "\nCommands:\n")
}

func TestColorAutoDetection(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm-256color")

	parser, err := NewParserWith(WithStdout(os.Stdout), WithTerminal(fakeTerminal(true)))
	require.NoError(t, err)
	assert.True(t, parser.colorEnabled())

	parser.SetStdout(&bytes.Buffer{})
	assert.False(t, parser.colorEnabled(), "buffers are never terminals")

	parser.SetStdout(os.Stdout)
	parser.SetTerminal(fakeTerminal(false))
	assert.False(t, parser.colorEnabled())

	parser.SetTerminal(fakeTerminal(true))
	t.Setenv("TERM", "dumb")
	assert.False(t, parser.colorEnabled())

	t.Setenv("TERM", "xterm")
	t.Setenv("NO_COLOR", "1")
	assert.False(t, parser.colorEnabled())

	parser.SetColor(ColorAlways)
	assert.True(t, parser.colorEnabled())
	parser.SetColor(ColorNever)
	t.Setenv("NO_COLOR", "")
	assert.False(t, parser.colorEnabled())
}

func TestWithExitCodes(t *testing.T) {
	var exits []int
	var stderr bytes.Buffer
	parser, err := NewParserWith(
		WithAppName("app"),
		WithStdout(&bytes.Buffer{}),
		WithStderr(&stderr),
		WithHelpExitCode(0),
		WithErrorExitCode(2),
		WithExitFunc(func(code int) { exits = append(exits, code) }),
	)
	require.NoError(t, err)

	result := parser.ParseOrExit([]string{"--help"})
	assert.Equal(t, HelpRequested, result.Status)
	parser.ParseOrExit([]string{"--nope"})

	assert.Equal(t, []int{0, 2}, exits)
	assert.Equal(t, "app: unrecognized command line option: nope\n", stderr.String())
}
