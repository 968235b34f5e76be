package completion

import (
	"fmt"
	"strings"
)

type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fn := functionName(programName)

	// Options taking a value complete file names
	var valueFlags []string
	seen := map[string]bool{}
	collect := func(flags []Flag) {
		for _, flag := range flags {
			if !flag.TakesValue {
				continue
			}
			for _, s := range flag.Spellings() {
				if !seen[s] {
					seen[s] = true
					valueFlags = append(valueFlags, s)
				}
			}
		}
	}
	collect(data.Flags)
	for _, cmd := range data.Commands {
		collect(data.CommandFlags[cmd])
	}

	script.WriteString(fmt.Sprintf(`#!/bin/bash

__%s_completion() {
    local cur prev cmd i
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    cmd=""

    # Find the command, skipping the values of value-taking flags
    for ((i=1; i < COMP_CWORD; i++)); do
        case "${COMP_WORDS[i]}" in`, fn))
	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
            %s)
                ((i++))
                ;;`, strings.Join(valueFlags, "|")))
	}
	script.WriteString(`
            -*)
                ;;
            *)
                cmd="${COMP_WORDS[i]}"
                break
                ;;
        esac
    done
`)

	if len(valueFlags) > 0 {
		script.WriteString(fmt.Sprintf(`
    case "${prev}" in
        %s)
            COMPREPLY=( $(compgen -f -- "$cur") )
            return
            ;;
    esac
`, strings.Join(valueFlags, "|")))
	}

	script.WriteString(`
    # If we're completing an option
    if [[ "$cur" == -* ]]; then
        local flags=(`)
	var globals []string
	for _, flag := range data.Flags {
		globals = append(globals, flag.Spellings()...)
	}
	script.WriteString(strings.Join(globals, " "))
	script.WriteString(`)

        case "${cmd}" in`)

	for _, cmd := range data.Commands {
		var spellings []string
		for _, flag := range data.CommandFlags[cmd] {
			spellings = append(spellings, flag.Spellings()...)
		}
		if len(spellings) == 0 {
			continue
		}
		script.WriteString(fmt.Sprintf(`
            %s)
                flags+=(%s)
                ;;`, cmd, strings.Join(spellings, " ")))
	}

	script.WriteString(fmt.Sprintf(`
        esac

        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi

    # Complete commands if no command is present yet, input files otherwise
    if [[ -z "$cmd" ]]; then
        COMPREPLY=( $(compgen -W "%s" -- "$cur") )
    else
        COMPREPLY=( $(compgen -f -- "$cur") )
    fi
}

complete -F __%s_completion %s
`, escapeBash(strings.Join(data.Commands, " ")), fn, programName))

	return script.String()
}
