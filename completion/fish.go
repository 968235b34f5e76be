package completion

import (
	"fmt"
	"strings"
)

type FishGenerator struct{}

func fishFlag(flag Flag) string {
	var parts []string
	if flag.Short != "" {
		parts = append(parts, "-s "+flag.Short)
	}
	if flag.Long != "" {
		parts = append(parts, "-l "+flag.Long)
	}
	if flag.TakesValue {
		parts = append(parts, "-r")
	}
	parts = append(parts, fmt.Sprintf("-d '%s'", escapeFish(flag.Description)))

	return strings.Join(parts, " ")
}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	// Global options
	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf("complete -c %s %s\n", programName, fishFlag(flag)))
	}

	// Commands (always disable file completion for commands)
	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(
			"complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
			programName, cmd, escapeFish(data.CommandDescriptions[cmd])))
	}

	// Command-specific options
	for _, cmd := range data.Commands {
		for _, flag := range data.CommandFlags[cmd] {
			script.WriteString(fmt.Sprintf(
				"complete -c %s -n '__fish_seen_subcommand_from %s' %s\n",
				programName, cmd, fishFlag(flag)))
		}
	}

	return script.String()
}
