package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	tests := []struct {
		name      string
		validator func(string) bool
		valid     []string
		invalid   []string
	}{
		{
			name:      "integer",
			validator: Integer(),
			valid:     []string{"0", "42", "-7"},
			invalid:   []string{"", "4.2", "abc", "1e3"},
		},
		{
			name:      "float",
			validator: Float(),
			valid:     []string{"0", "4.2", "-1e3"},
			invalid:   []string{"", "four"},
		},
		{
			name:      "range",
			validator: Range(0, 3),
			valid:     []string{"0", "1.5", "3"},
			invalid:   []string{"-1", "3.01", "x"},
		},
		{
			name:      "one of",
			validator: OneOf("debug", "release"),
			valid:     []string{"debug", "release"},
			invalid:   []string{"Debug", "", "profile"},
		},
		{
			name:      "non empty",
			validator: NonEmpty(),
			valid:     []string{"a", " a "},
			invalid:   []string{"", "   "},
		},
		{
			name:      "min length counts runes",
			validator: MinLength(4),
			valid:     []string{"café", "longer"},
			invalid:   []string{"caf", ""},
		},
		{
			name:      "max length counts runes",
			validator: MaxLength(4),
			valid:     []string{"café", ""},
			invalid:   []string{"cafés"},
		},
		{
			name:      "date",
			validator: Date(),
			valid:     []string{"2017-03-14", "March 14, 2017", "1489449600"},
			invalid:   []string{"not a date"},
		},
		{
			name:      "all",
			validator: All(Integer(), Range(1, 10)),
			valid:     []string{"1", "10"},
			invalid:   []string{"0", "5.5", "x"},
		},
		{
			name:      "any",
			validator: Any(OneOf("auto"), Integer()),
			valid:     []string{"auto", "3"},
			invalid:   []string{"manual"},
		},
		{
			name:      "not",
			validator: Not(OneOf("-")),
			valid:     []string{"file"},
			invalid:   []string{"-"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, v := range tt.valid {
				assert.True(t, tt.validator(v), "%q should be accepted", v)
			}
			for _, v := range tt.invalid {
				assert.False(t, tt.validator(v), "%q should be rejected", v)
			}
		})
	}
}

func TestRegex(t *testing.T) {
	validator, err := Regex(`^[a-z]+\.bin$`)
	require.NoError(t, err)
	assert.True(t, validator("out.bin"))
	assert.False(t, validator("out.exe"))

	_, err = Regex(`(`)
	assert.Error(t, err, "invalid patterns are reported on construction")
}

func TestExistingFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "in.txt")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0o644))

	validator := ExistingFile()
	assert.True(t, validator(file))
	assert.False(t, validator(dir), "directories are not regular files")
	assert.False(t, validator(filepath.Join(dir, "missing.txt")))
}
