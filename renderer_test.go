package cmdline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultRenderer_OptionUsageAlignsDescriptions(t *testing.T) {
	r := NewRenderer(nil)
	longest := len("verbose")

	lines := []string{
		r.OptionUsage(NewOption('v', "verbose", NoArgument, "Verbose"), longest),
		r.OptionUsage(NewOption('o', "out", NoArgument, "Out"), longest),
		r.OptionUsage(NewOption(0, "color", NoArgument, "Color"), longest),
		r.OptionUsage(NewOption('x', "", NoArgument, "Extra"), longest),
	}

	column := strings.Index(lines[0], "Verbose")
	assert.Equal(t, 2+6+longest+UsageColumnIndent, column)
	assert.Equal(t, column, strings.Index(lines[1], "Out"))
	assert.Equal(t, column, strings.Index(lines[2], "Color"))
	assert.Equal(t, column, strings.Index(lines[3], "Extra"))
	assert.Equal(t, "      --color", lines[2][:13])
}

func TestDefaultRenderer_CommandUsage(t *testing.T) {
	r := NewRenderer(nil)

	assert.Equal(t, "  run      Run it", r.CommandUsage(&Command{Name: "run", Description: "Run it"}, 5))
	assert.Equal(t, "  build    Build it", r.CommandUsage(&Command{Name: "build", Description: "Build it"}, 5))
}

func TestDefaultRenderer_OptionLabel(t *testing.T) {
	r := NewRenderer(nil)

	assert.Equal(t, "-o, --output", r.OptionLabel(NewOption('o', "output", NoArgument, "d")))
	assert.Equal(t, "    --output", r.OptionLabel(NewOption(0, "output", NoArgument, "d")))
	assert.Equal(t, "-o", r.OptionLabel(NewOption('o', "", NoArgument, "d")))
}

func TestDefaultRenderer_Heading(t *testing.T) {
	assert.Equal(t, "Commands:", NewRenderer(nil).Heading("Commands:"))

	p := NewParser("app", "desc", "footer")
	p.SetColor(ColorNever)
	assert.Equal(t, "Commands:", NewRenderer(p).Heading("Commands:"))

	p.SetColor(ColorAlways)
	heading := NewRenderer(p).Heading("Commands:")
	assert.True(t, strings.HasPrefix(heading, "\x1b[1m"), "bold escape expected, got %q", heading)
	assert.Contains(t, heading, "Commands:")
}
