package domain

// Command is one external command invocation.
type Command struct {
	// Name is the executable name, resolved against PATH unless absolute.
	Name string
	// Args are the command arguments.
	Args []string
	// Dir is the working directory.
	Dir string
	// Env holds extra environment variables. A PATH entry is prepended to
	// the inherited PATH rather than replacing it.
	Env map[string]string
}

// String renders the command for log output.
func (c Command) String() string {
	out := c.Name
	for _, arg := range c.Args {
		out += " " + arg
	}
	return out
}
