package cmdline

// NewCommand creates and returns a new Command object. This function takes variadic `ConfigureCommandFunc`
// functions to customize the created command. Configuration stops at the first error, which is kept on the
// Command and returned by Validate, so Parser.AddCommand reports it.
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	cmd.ensureInit()

	var err error
	for _, config := range configs {
		config(cmd, &err)
		if err != nil {
			cmd.err = err
			break
		}
	}

	return cmd
}

// Set is a helper config function that allows setting multiple configuration functions on a command.
// It stops at the first configuration error.
func (c *Command) Set(configs ...ConfigureCommandFunc) error {
	c.ensureInit()
	var err error
	for _, config := range configs {
		config(c, &err)
		if err != nil {
			return err
		}
	}

	return nil
}

// WithName sets the name for the command. The name is used to identify the command and invoke it from the command line.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Name = name
	}
}

// WithCommandDescription sets the description for the command. This description helps users to understand what the command does.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Description = description
	}
}

// WithProcess sets the function run when the command is selected on the command line.
func WithProcess(process ProcessFunc) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		command.Process = process
	}
}

// WithOptions registers options scoped to the command. Registration stops at the first rejected option.
func WithOptions(options ...*Option) ConfigureCommandFunc {
	return func(command *Command, err *error) {
		for _, option := range options {
			if *err = command.AddOption(option); *err != nil {
				return
			}
		}
	}
}
