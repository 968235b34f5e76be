package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/napalu/cmdline"
	"github.com/napalu/cmdline/validation"
)

type config struct {
	out   io.Writer
	lines bool
	words bool
}

func main() {
	cfg := &config{out: os.Stdout}
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	parser, err := newParser(cfg, level, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	parser.ParseOrExit(os.Args[1:])
	if f, ok := cfg.out.(*os.File); ok && f != os.Stdout {
		_ = f.Close()
	}
}

func newParser(cfg *config, level *slog.LevelVar, logger *slog.Logger) (*cmdline.Parser, error) {
	var parser *cmdline.Parser
	parser, err := cmdline.NewParserWith(
		cmdline.WithAppName("cmdline-demo"),
		cmdline.WithDescription("Counts things in files and prints shell completion scripts."),
		cmdline.WithHelpFooter("Report bugs at https://github.com/napalu/cmdline/issues"),
		cmdline.WithLogger(logger),
		cmdline.WithGlobalOption(cmdline.NewOpt(
			cmdline.WithShort('v'),
			cmdline.WithLong("verbose"),
			cmdline.WithOptionDescription("Log parsing details to stderr"),
			cmdline.WithHandler(func(*cmdline.Option, string, bool) error {
				level.Set(slog.LevelDebug)
				return nil
			}))),
		cmdline.WithGlobalOption(cmdline.NewOpt(
			cmdline.WithShort('o'),
			cmdline.WithLong("output"),
			cmdline.WithArity(cmdline.ArgumentRequired),
			cmdline.WithOptionDescription("Write results to a file instead of stdout"),
			cmdline.WithHandler(func(_ *cmdline.Option, path string, _ bool) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				cfg.out = f
				return nil
			}))),
		cmdline.WithGlobalOption(cmdline.NewOpt(
			cmdline.WithShort('C'),
			cmdline.WithLong("color"),
			cmdline.WithArity(cmdline.ArgumentRequired),
			cmdline.WithOptionDescription("Color help headings: auto, always or never"),
			cmdline.WithValidator(validation.OneOf("auto", "always", "never")),
			cmdline.WithHandler(func(_ *cmdline.Option, mode string, _ bool) error {
				switch mode {
				case "always":
					parser.SetColor(cmdline.ColorAlways)
				case "never":
					parser.SetColor(cmdline.ColorNever)
				default:
					parser.SetColor(cmdline.ColorAuto)
				}
				return nil
			}))),
		cmdline.WithCommand(cmdline.NewCommand(
			cmdline.WithName("count"),
			cmdline.WithCommandDescription("Count lines and words of the input files"),
			cmdline.WithOptions(
				cmdline.NewOpt(
					cmdline.WithShort('l'),
					cmdline.WithLong("lines"),
					cmdline.WithOptionDescription("Only count lines"),
					cmdline.WithHandler(func(*cmdline.Option, string, bool) error {
						cfg.lines = true
						return nil
					})),
				cmdline.NewOpt(
					cmdline.WithShort('w'),
					cmdline.WithLong("words"),
					cmdline.WithOptionDescription("Only count words"),
					cmdline.WithHandler(func(*cmdline.Option, string, bool) error {
						cfg.words = true
						return nil
					}))),
			cmdline.WithProcess(func(_ *cmdline.Command, inputs []string) error {
				return count(cfg, inputs)
			}))),
		cmdline.WithCommand(cmdline.NewCommand(
			cmdline.WithName("completion"),
			cmdline.WithCommandDescription("Print a completion script for bash, zsh or fish"),
			cmdline.WithProcess(func(_ *cmdline.Command, inputs []string) error {
				if len(inputs) != 1 {
					return fmt.Errorf("expected exactly one shell name, got %d", len(inputs))
				}
				script, err := parser.GenerateCompletion(inputs[0])
				if err != nil {
					return err
				}
				_, err = io.WriteString(cfg.out, script)
				return err
			}))),
	)

	return parser, err
}

func count(cfg *config, inputs []string) error {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	for _, name := range inputs {
		lines, words, err := countFile(name)
		if err != nil {
			return err
		}
		switch {
		case cfg.lines && !cfg.words:
			fmt.Fprintf(cfg.out, "%8d %s\n", lines, name)
		case cfg.words && !cfg.lines:
			fmt.Fprintf(cfg.out, "%8d %s\n", words, name)
		default:
			fmt.Fprintf(cfg.out, "%8d %8d %s\n", lines, words, name)
		}
	}

	return nil
}

func countFile(name string) (int, int, error) {
	var r io.Reader = os.Stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, 0, err
		}
		defer f.Close()
		r = f
	}

	var lines, words int
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines++
		words += len(strings.Fields(scanner.Text()))
	}

	return lines, words, scanner.Err()
}
