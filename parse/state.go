package parse

// State is a cursor over the argument list being scanned
type State interface {
	Pos() int             // Get the current position
	Skip()                // Skip the next argument
	CurrentArg() string   // Get the current argument
	Peek() (string, bool) // Peek at the next argument
	Advance() bool        // Advance to the next argument
}

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State positioned before the first argument
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the argument list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Skip consumes the next argument without making it current
func (s *DefaultState) Skip() {
	if s.pos < len(s.args) {
		s.pos++
	}
}

// CurrentArg returns the current argument
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// Advance advances to the next argument, returning true if successful
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Peek returns the next argument without advancing the current position.
// The second return value is false at the end of the list.
func (s *DefaultState) Peek() (string, bool) {
	if s.pos+1 < len(s.args) {
		return s.args[s.pos+1], true
	}

	return "", false
}
