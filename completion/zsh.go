package completion

import (
	"fmt"
	"strings"
)

type ZshGenerator struct{}

func zshFlagSpec(flag Flag) string {
	value := ""
	if flag.TakesValue {
		value = ":value:_files"
	}
	desc := escapeZsh(flag.Description)

	spellings := flag.Spellings()
	if len(spellings) == 2 {
		return fmt.Sprintf(`'(%[1]s %[2]s)'{%[1]s,%[2]s}'[%[3]s]%[4]s'`, spellings[0], spellings[1], desc, value)
	}

	return fmt.Sprintf(`'%s[%s]%s'`, spellings[0], desc, value)
}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	script.WriteString(fmt.Sprintf(`#compdef %s

_%s() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

    _arguments -C \`, programName, fn))

	for _, flag := range data.Flags {
		script.WriteString(fmt.Sprintf(`
        %s \`, zshFlagSpec(flag)))
	}

	script.WriteString(`
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)`)

	if len(data.Commands) > 0 {
		script.WriteString(`
            _values 'commands'`)
		for _, cmd := range data.Commands {
			script.WriteString(fmt.Sprintf(` \
                '%s[%s]'`, cmd, escapeZsh(data.CommandDescriptions[cmd])))
		}
	}

	script.WriteString(`
            ;;
        args)
            case $words[1] in`)

	for _, cmd := range data.Commands {
		script.WriteString(fmt.Sprintf(`
                %s)
                    _arguments \`, cmd))
		for _, flag := range data.CommandFlags[cmd] {
			script.WriteString(fmt.Sprintf(`
                        %s \`, zshFlagSpec(flag)))
		}
		script.WriteString(`
                        '*:input file:_files'
                    ;;`)
	}

	script.WriteString(fmt.Sprintf(`
            esac
            ;;
    esac
}

_%s "$@"
`, fn))

	return script.String()
}
