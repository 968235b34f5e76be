package completion

import (
	"sort"

	"github.com/napalu/cmdline/errs"
)

// Generator renders a completion script for a shell
type Generator interface {
	Generate(programName string, data CompletionData) string
}

var generators = map[string]func() Generator{
	"bash": func() Generator { return &BashGenerator{} },
	"zsh":  func() Generator { return &ZshGenerator{} },
	"fish": func() Generator { return &FishGenerator{} },
}

// GetGenerator returns the generator for shell or ErrUnsupportedShell
func GetGenerator(shell string) (Generator, error) {
	newGenerator, ok := generators[shell]
	if !ok {
		return nil, errs.ErrUnsupportedShell.WithArgs(shell)
	}

	return newGenerator(), nil
}

// SupportedShells returns the names accepted by GetGenerator, sorted
func SupportedShells() []string {
	shells := make([]string, 0, len(generators))
	for shell := range generators {
		shells = append(shells, shell)
	}
	sort.Strings(shells)

	return shells
}
