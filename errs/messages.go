package errs

import "sync"

// MessageProvider returns the format string for a message key.
type MessageProvider interface {
	GetMessage(key string) string
}

var defaultMessages = map[string]string{
	ErrUnrecognizedOptionKey: "unrecognized command line option: %s",
	ErrArgumentMissingKey:    "command line option %s is missing an argument",
	ErrInvalidArgumentKey:    "invalid argument '%s' provided to option %s",
	ErrInvalidCommandKey:     "invalid command specified: %s",
	ErrNoCommandSpecifiedKey: "no command was specified on the command line",
	ErrSplitArgumentsKey:     "could not split argument string",

	ErrNilOptionKey:            "option is nil",
	ErrNilCommandKey:           "command is nil",
	ErrOptionWithoutNameKey:    "option needs a short or a long name",
	ErrInvalidShortOptionKey:   "invalid short option '%c'",
	ErrInvalidLongOptionKey:    "invalid long option '%s'",
	ErrEmptyDescriptionKey:     "description of %s is empty",
	ErrInvalidArityKey:         "invalid argument arity %d for option %s",
	ErrOptionAlreadyExistsKey:  "option %s conflicts with already registered option %s",
	ErrEmptyCommandNameKey:     "command name is empty",
	ErrCommandAlreadyExistsKey: "command %s is already registered",
	ErrUnsupportedShellKey:     "unsupported shell: %s",

	ErrOptionHandlerKey:   "handler for option %s failed",
	ErrCommandCallbackKey: "command %s failed",
}

// DefaultMessageProvider serves the built-in English messages
type DefaultMessageProvider struct{}

func (DefaultMessageProvider) GetMessage(key string) string {
	if msg, ok := defaultMessages[key]; ok {
		return msg
	}
	return key
}

var (
	provider    MessageProvider = DefaultMessageProvider{}
	providerMux sync.RWMutex
)

// SetMessageProvider replaces the provider used to render every error message.
// Passing nil restores the built-in messages.
func SetMessageProvider(p MessageProvider) {
	providerMux.Lock()
	defer providerMux.Unlock()
	if p == nil {
		p = DefaultMessageProvider{}
	}
	provider = p
}

func currentProvider() MessageProvider {
	providerMux.RLock()
	defer providerMux.RUnlock()
	return provider
}
