package main

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T) (*cmdline.Parser, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	level := new(slog.LevelVar)
	parser, err := newParser(&config{out: out}, level, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	parser.SetStdout(io.Discard)
	parser.SetStderr(io.Discard)

	return parser, out
}

func writeInput(t *testing.T) string {
	t.Helper()

	name := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(name, []byte("one two\nthree\n"), 0o600))

	return name
}

func TestColorOption_TakesValueBeforeCommand(t *testing.T) {
	input := writeInput(t)

	for _, args := range [][]string{
		{"--color", "never", "count", "-l", input},
		{"-C", "always", "count", "-l", input},
		{"-Cauto", "count", "-l", input},
	} {
		t.Run(args[0], func(t *testing.T) {
			parser, out := newTestParser(t)

			result, err := parser.Parse(args)
			require.NoError(t, err)
			assert.Equal(t, cmdline.Completed, result.Status)
			require.NotNil(t, result.Command)
			assert.Equal(t, "count", result.Command.Name)
			assert.Equal(t, "       2 "+input+"\n", out.String())
		})
	}
}

func TestColorOption_DoesNotSwallowCommand(t *testing.T) {
	input := writeInput(t)
	parser, out := newTestParser(t)

	_, err := parser.Parse([]string{"-C", "count", input})
	assert.True(t, errors.Is(err, errs.ErrInvalidArgument), "got %v", err)
	assert.Equal(t, "count", errs.Offending(err))
	assert.Empty(t, out.String())

	_, err = parser.Parse([]string{"count", "-C"})
	assert.True(t, errors.Is(err, errs.ErrArgumentMissing), "got %v", err)
}
