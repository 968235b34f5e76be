package completion

import "fmt"

// Flag describes one option for completion purposes
type Flag struct {
	Short       string // single character, empty when absent
	Long        string // long name without dashes, empty when absent
	Description string
	TakesValue  bool // true when the option accepts an argument
}

// Spellings returns the dashed spellings of the flag, short first
func (f Flag) Spellings() []string {
	var spellings []string
	if f.Short != "" {
		spellings = append(spellings, "-"+f.Short)
	}
	if f.Long != "" {
		spellings = append(spellings, "--"+f.Long)
	}

	return spellings
}

func (f Flag) String() string {
	if f.Short != "" && f.Long != "" {
		return fmt.Sprintf("-%s, --%s", f.Short, f.Long)
	}
	if f.Short != "" {
		return "-" + f.Short
	}
	return "--" + f.Long
}

// CompletionData is used to store the completion data for all configured options and commands
type CompletionData struct {
	Commands            []string          // command names in help order
	CommandDescriptions map[string]string // keyed by command name
	Flags               []Flag            // global options
	CommandFlags        map[string][]Flag // options per command name
}
