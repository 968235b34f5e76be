package util

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Terminal reports whether a file descriptor is attached to a terminal
type Terminal interface {
	IsTerminal(fd int) bool
}

// DefaultTerminal implements Terminal using golang.org/x/term
type DefaultTerminal struct{}

func (DefaultTerminal) IsTerminal(fd int) bool {
	return term.IsTerminal(fd)
}

type fileDescriptor interface {
	Fd() uintptr
}

// IsTerminal returns true when w is a file attached to a terminal
func IsTerminal(t Terminal, w io.Writer) bool {
	if t == nil || w == nil {
		return false
	}
	f, ok := w.(fileDescriptor)
	if !ok {
		return false
	}

	return t.IsTerminal(int(f.Fd()))
}

// ColorEnabled returns true when w is a terminal, NO_COLOR is not set and TERM is not "dumb".
// An unset TERM does not disable color; Windows consoles usually leave it unset.
func ColorEnabled(t Terminal, w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return IsTerminal(t, w)
}
