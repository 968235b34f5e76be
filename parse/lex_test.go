package parse

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:    "command with options",
			input:   "build -o out.bin in.txt",
			want:    []string{"build", "-o", "out.bin", "in.txt"},
			wantErr: false,
		},
		{
			name:    "quoted arguments",
			input:   `build --output "my file.bin"`,
			want:    []string{"build", "--output", "my file.bin"},
			wantErr: false,
		},
		{
			name:    "multiple quotes",
			input:   `build "first input" 'second input'`,
			want:    []string{"build", "first input", "second input"},
			wantErr: false,
		},
		{
			name:    "escaped quotes",
			input:   `build \"in\"`,
			want:    []string{"build", `"in"`},
			wantErr: false,
		},
		{
			name:    "attached short option value",
			input:   "build -O'2 3'",
			want:    []string{"build", "-O2 3"},
			wantErr: false,
		},
		{
			name:    "multiple spaces",
			input:   "build   in1    in2",
			want:    []string{"build", "in1", "in2"},
			wantErr: false,
		},
		{
			name:    "empty string",
			input:   "",
			want:    []string{},
			wantErr: false,
		},
		{
			name:    "only spaces",
			input:   "   ",
			want:    []string{},
			wantErr: false,
		},
		{
			name:    "unterminated quote",
			input:   `build "in.txt`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("Split() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}
