package cmdline

import (
	"fmt"
	"io"
	"strings"

	"github.com/napalu/cmdline/errs"
)

func (c *Command) ensureInit() {
	if c.options == nil {
		c.options = newOptionSet(false)
	}
}

// AddOption registers an option scoped to the command. An option sharing a spelling with an
// already registered one is rejected and the existing option is kept.
func (c *Command) AddOption(option *Option) error {
	if option == nil {
		return errs.ErrNilOption
	}
	if err := option.Validate(); err != nil {
		return err
	}
	c.ensureInit()

	return c.options.add(option)
}

// LookupShort returns the command option spelled -short, or nil
func (c *Command) LookupShort(short rune) *Option {
	if c.options == nil {
		return nil
	}

	return c.options.lookupShort(short)
}

// LookupLong returns the command option spelled --long, or nil
func (c *Command) LookupLong(long string) *Option {
	if c.options == nil {
		return nil
	}

	return c.options.lookupLong(long)
}

// Options returns the command options in registration order
func (c *Command) Options() []*Option {
	if c.options == nil {
		return nil
	}

	return c.options.all()
}

// PrintOptions writes the command's option list to w without color
func (c *Command) PrintOptions(w io.Writer) {
	c.writeOptions(w, NewRenderer(nil))
}

func (c *Command) writeOptions(w io.Writer, renderer Renderer) {
	var sb strings.Builder
	sb.WriteString(renderer.Heading(fmt.Sprintf("Options for %q command:", c.Name)))
	sb.WriteString("\n")

	options := c.Options()
	if len(options) == 0 {
		sb.WriteString("  No options supported.\n")
	}
	for _, option := range options {
		sb.WriteString(renderer.OptionUsage(option, c.options.longest))
		sb.WriteString("\n")
	}

	_, _ = io.WriteString(w, sb.String())
}

// ProcessCommand calls the command's Process function with the positional inputs. A Command without
// Process does nothing. Errors are wrapped in errs.ErrCommandCallback.
func (c *Command) ProcessCommand(inputs []string) error {
	if c.Process == nil {
		return nil
	}
	if inputs == nil {
		inputs = []string{}
	}
	if err := c.Process(c, inputs); err != nil {
		return errs.ErrCommandCallback.WithArgs(c.Name).Wrap(err)
	}

	return nil
}

// Compare orders commands by name
func (c *Command) Compare(other *Command) int {
	return strings.Compare(c.Name, other.Name)
}

// Validate returns the configuration error kept by NewCommand, if any, then checks the command has a
// name and a description
func (c *Command) Validate() error {
	if c.err != nil {
		return c.err
	}
	if c.Name == "" {
		return errs.ErrEmptyCommandName
	}
	if c.Description == "" {
		return errs.ErrEmptyDescription.WithArgs(c.Name)
	}

	return nil
}

func (c *Command) String() string {
	return c.Name
}
