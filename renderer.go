package cmdline

import (
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
)

// DefaultRenderer renders usage lines in aligned columns. Headings are bold when the parser enables color.
type DefaultRenderer struct {
	parser *Parser
}

// NewRenderer returns a DefaultRenderer for parser. A nil parser renders without color.
func NewRenderer(parser *Parser) *DefaultRenderer {
	return &DefaultRenderer{parser: parser}
}

// OptionLabel returns the spelling column of an option line. A missing short spelling is rendered as
// four spaces so long spellings line up.
func (r *DefaultRenderer) OptionLabel(o *Option) string {
	var sb strings.Builder
	if o.Short != 0 {
		sb.WriteString("-")
		sb.WriteRune(o.Short)
		if o.Long != "" {
			sb.WriteString(", ")
		}
	} else {
		sb.WriteString("    ")
	}
	if o.Long != "" {
		sb.WriteString("--")
		sb.WriteString(o.Long)
	}

	return sb.String()
}

// OptionUsage renders "  -x, --long<padding>description". The description starts in column
// longest + UsageColumnIndent after the "-x, --" prefix.
func (r *DefaultRenderer) OptionUsage(o *Option, longest int) string {
	label := r.OptionLabel(o)
	// "-x, --" is six runes wide
	width := 6 + longest + UsageColumnIndent

	return "  " + padRight(label, width) + o.Description
}

// CommandUsage renders "  name<padding>description"
func (r *DefaultRenderer) CommandUsage(c *Command, longest int) string {
	return "  " + padRight(c.Name, longest+UsageColumnIndent) + c.Description
}

// Heading renders a section heading, bold when color is enabled
func (r *DefaultRenderer) Heading(text string) string {
	if r.parser == nil || !r.parser.colorEnabled() {
		return text
	}

	bold := color.New(color.Bold)
	bold.EnableColor()

	return bold.Sprint(text)
}

func padRight(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n < UsageColumnIndent {
		n = UsageColumnIndent
	}

	return s + strings.Repeat(" ", n)
}
