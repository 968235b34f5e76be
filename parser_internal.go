package cmdline

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/util"
)

const helpHint = "For options related to a specific command, use --help or -h as an option for the desired command."

func (p *Parser) scan(state parse.State) (Result, error) {
	var (
		current *Command
		inputs  []string
	)

	for state.Advance() {
		token := state.CurrentArg()

		switch {
		case strings.HasPrefix(token, "--"):
			name := token[2:]
			option := p.resolveLong(name, current)
			if option == nil {
				if name == "" {
					name = token
				}
				return Result{}, errs.ErrUnrecognizedOption.WithArgs(name)
			}
			if option == p.helpOption {
				return p.help(current), nil
			}
			if err := p.dispatch(state, option, token, ""); err != nil {
				return Result{}, err
			}
		case strings.HasPrefix(token, "-"):
			if len(token) < 2 {
				return Result{}, errs.ErrUnrecognizedOption.WithArgs(token)
			}
			short, size := utf8.DecodeRuneInString(token[1:])
			option := p.resolveShort(short, current)
			if option == nil {
				return Result{}, errs.ErrUnrecognizedOption.WithArgs(token)
			}
			if option == p.helpOption {
				return p.help(current), nil
			}
			if err := p.dispatch(state, option, token, token[1+size:]); err != nil {
				return Result{}, err
			}
		case current != nil:
			p.logger.Debug("input", "command", current.Name, "value", token)
			inputs = append(inputs, token)
		default:
			cmd, found := p.commands.Get(token)
			if !found {
				return Result{}, errs.ErrInvalidCommand.WithArgs(token)
			}
			p.logger.Debug("command selected", "command", cmd.Name, "position", state.Pos())
			current = cmd
		}
	}

	if current == nil {
		return Result{}, errs.ErrNoCommandSpecified
	}
	if inputs == nil {
		inputs = []string{}
	}

	p.logger.Debug("processing command", "command", current.Name, "inputs", len(inputs))
	if err := current.ProcessCommand(inputs); err != nil {
		return Result{}, err
	}

	return Result{Status: Completed, Command: current, Inputs: inputs}, nil
}

// resolveLong looks name up among global options, then among the options of current
func (p *Parser) resolveLong(name string, current *Command) *Option {
	if option := p.globals.lookupLong(name); option != nil {
		return option
	}
	if current != nil {
		return current.LookupLong(name)
	}

	return nil
}

// resolveShort looks short up among global options, then among the options of current
func (p *Parser) resolveShort(short rune, current *Command) *Option {
	if option := p.globals.lookupShort(short); option != nil {
		return option
	}
	if current != nil {
		return current.LookupShort(short)
	}

	return nil
}

// dispatch extracts the option argument and hands it to the option. attached holds whatever follows
// the option character of a short option and takes precedence over the next token.
func (p *Parser) dispatch(state parse.State, option *Option, token, attached string) error {
	argument, present, err := extractArgument(state, option, token, attached)
	if err != nil {
		return err
	}

	p.logger.Debug("option", "option", option.String(), "argument", argument, "present", present)

	return option.Handle(argument, present)
}

func extractArgument(state parse.State, option *Option, token, attached string) (string, bool, error) {
	if option.Arity == NoArgument {
		return "", false, nil
	}
	if attached != "" {
		return attached, true, nil
	}
	if next, ok := state.Peek(); ok && !strings.HasPrefix(next, "-") {
		state.Skip()
		return next, true, nil
	}
	if option.ArgumentRequired() {
		return "", false, errs.ErrArgumentMissing.WithArgs(token)
	}

	return "", false, nil
}

func (p *Parser) help(current *Command) Result {
	if current == nil {
		p.logger.Debug("help requested")
		p.PrintUsage()
	} else {
		p.logger.Debug("help requested", "command", current.Name)
		p.PrintCommandUsage(current)
	}

	return Result{Status: HelpRequested, Command: current}
}

func (p *Parser) printUsage(w io.Writer, cmd *Command) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Usage: %s <COMMAND> [OPTIONS...] [INPUT FILE]\n", p.appName))
	sb.WriteString(p.description)
	sb.WriteString("\n\n")

	if cmd == nil {
		sb.WriteString(p.renderer.Heading("Commands:"))
		sb.WriteString("\n")
		for _, c := range p.Commands() {
			sb.WriteString(p.renderer.CommandUsage(c, p.longestCommand))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")

		sb.WriteString(p.renderer.Heading("Global options:"))
		sb.WriteString("\n")
		for _, option := range p.GlobalOptions() {
			sb.WriteString(p.renderer.OptionUsage(option, p.globals.longest))
			sb.WriteString("\n")
		}
		_, _ = io.WriteString(w, sb.String())
	} else {
		_, _ = io.WriteString(w, sb.String())
		cmd.writeOptions(w, p.renderer)
	}

	_, _ = fmt.Fprintf(w, "\n%s\n\n%s\n", helpHint, p.helpFooter)
}

func (p *Parser) colorEnabled() bool {
	switch p.colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	return util.ColorEnabled(p.terminal, p.stdout)
}
