// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package cmdline provides command/option registration and command-line parsing.
//
// An application registers Commands, each owning its own Options, and global Options which are
// accepted regardless of the selected command. The first plain token on the command line selects
// the command; plain tokens after it are collected as inputs and handed to the command's Process
// function once all options were handled:
//
//	app <COMMAND> [OPTIONS...] [INPUT FILE]
//
// Options are spelled -x or --name. Arguments follow as the next token (-x value, --name value) or,
// for short options only, attached (-xvalue). The built-in -h/--help option prints the full usage,
// or the command's options when it follows a command.
package cmdline

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/napalu/cmdline/completion"
	"github.com/napalu/cmdline/errs"
	"github.com/napalu/cmdline/parse"
	"github.com/napalu/cmdline/util"
	"github.com/tidwall/btree"
)

// NewParser creates a parser with the built-in help option registered. appName and description head the
// usage output, helpFooter ends it. Use NewParserWith to configure the Parser using option functions.
func NewParser(appName, description, helpFooter string) *Parser {
	p := &Parser{
		appName:       appName,
		description:   description,
		helpFooter:    helpFooter,
		commands:      btree.NewMap[string, *Command](0),
		globals:       newOptionSet(true),
		stdout:        os.Stdout,
		stderr:        os.Stderr,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		colorMode:     ColorAuto,
		terminal:      util.DefaultTerminal{},
		helpExitCode:  1,
		errorExitCode: 1,
		exitFunc:      os.Exit,
	}
	p.renderer = NewRenderer(p)
	p.helpOption = NewOption(helpShort, helpLong, NoArgument, helpDescription)
	_ = p.globals.add(p.helpOption)

	return p
}

// AddCommand registers a command. Commands need a unique name and a description.
func (p *Parser) AddCommand(cmd *Command) error {
	if cmd == nil {
		return errs.ErrNilCommand
	}
	if err := cmd.Validate(); err != nil {
		return err
	}
	if _, found := p.commands.Get(cmd.Name); found {
		return errs.ErrCommandAlreadyExists.WithArgs(cmd.Name)
	}

	cmd.ensureInit()
	p.commands.Set(cmd.Name, cmd)
	if l := utf8.RuneCountInString(cmd.Name); l > p.longestCommand {
		p.longestCommand = l
	}

	return nil
}

// AddGlobalOption registers an option accepted with any command. Global options are resolved before
// command options, so a command option sharing a spelling with a global option is never matched.
func (p *Parser) AddGlobalOption(option *Option) error {
	if option == nil {
		return errs.ErrNilOption
	}
	if err := option.Validate(); err != nil {
		return err
	}

	return p.globals.add(option)
}

// Parse scans args (without the program name). On success the selected command's Process function has run
// and the Result holds the command and its inputs. When -h/--help is found usage is printed and Parse returns
// a HelpRequested Result without processing any command. Without arguments the full usage is printed and
// Parse returns a UsageShown Result. Every error aborts the scan; handlers which already ran are not undone.
func (p *Parser) Parse(args []string) (Result, error) {
	if len(args) == 0 {
		p.logger.Debug("no arguments given, printing usage")
		p.PrintUsage()
		return Result{Status: UsageShown}, nil
	}

	return p.scan(parse.NewState(args))
}

// ParseString splits s using POSIX shell quoting rules and parses the result
func (p *Parser) ParseString(s string) (Result, error) {
	args, err := parse.Split(s)
	if err != nil {
		return Result{}, errs.ErrSplitArguments.Wrap(err)
	}

	return p.Parse(args)
}

// ParseOrExit calls Parse. Errors are printed to stderr followed by an exit with the error exit code;
// a help request exits with the help exit code. Both default to 1.
func (p *Parser) ParseOrExit(args []string) Result {
	result, err := p.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintf(p.stderr, "%s: %v\n", p.appName, err)
		p.exitFunc(p.errorExitCode)
		return result
	}
	if result.Status == HelpRequested {
		p.exitFunc(p.helpExitCode)
	}

	return result
}

// PrintUsage writes the full usage summary to stdout
func (p *Parser) PrintUsage() {
	p.printUsage(p.stdout, nil)
}

// PrintCommandUsage writes the usage header followed by cmd's options to stdout
func (p *Parser) PrintCommandUsage(cmd *Command) {
	p.printUsage(p.stdout, cmd)
}

// Commands returns the registered commands sorted by name
func (p *Parser) Commands() []*Command {
	commands := make([]*Command, 0, p.commands.Len())
	p.commands.Scan(func(_ string, cmd *Command) bool {
		commands = append(commands, cmd)
		return true
	})

	return commands
}

// Command returns the command registered under name
func (p *Parser) Command(name string) (*Command, bool) {
	return p.commands.Get(name)
}

// GlobalOptions returns the global options, including the help option, in Option.Compare order
func (p *Parser) GlobalOptions() []*Option {
	return p.globals.all()
}

// HelpOption returns the built-in -h/--help option
func (p *Parser) HelpOption() *Option {
	return p.helpOption
}

// CompletionData returns the registered commands and options in the form used by completion generators
func (p *Parser) CompletionData() completion.CompletionData {
	data := completion.CompletionData{
		CommandDescriptions: map[string]string{},
		CommandFlags:        map[string][]completion.Flag{},
	}
	for _, option := range p.GlobalOptions() {
		data.Flags = append(data.Flags, completionFlag(option))
	}
	for _, cmd := range p.Commands() {
		data.Commands = append(data.Commands, cmd.Name)
		data.CommandDescriptions[cmd.Name] = cmd.Description
		for _, option := range cmd.Options() {
			data.CommandFlags[cmd.Name] = append(data.CommandFlags[cmd.Name], completionFlag(option))
		}
	}

	return data
}

// GenerateCompletion returns a completion script for shell ("bash", "zsh" or "fish")
func (p *Parser) GenerateCompletion(shell string) (string, error) {
	generator, err := completion.GetGenerator(shell)
	if err != nil {
		return "", err
	}

	return generator.Generate(p.appName, p.CompletionData()), nil
}

func completionFlag(option *Option) completion.Flag {
	flag := completion.Flag{
		Long:        option.Long,
		Description: option.Description,
		TakesValue:  option.Arity != NoArgument,
	}
	if option.Short != 0 {
		flag.Short = string(option.Short)
	}

	return flag
}
