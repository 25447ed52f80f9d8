package replkit

import (
	"fmt"
	"iter"
	"sort"
	"strings"
	"unicode"
)

// reservedCommand is a command name the loop implements itself.
type reservedCommand struct {
	Name        string
	Description string
}

// reservedCommands are always available and cannot be registered over.
var reservedCommands = []reservedCommand{
	{"exit", "Exit the shell"},
	{"help", "Show this help message"},
	{"quit", "Exit the shell"},
}

func isReserved(name string) bool {
	for _, r := range reservedCommands {
		if r.Name == name {
			return true
		}
	}
	return false
}

// Registry holds the command set of one shell session. It is populated
// during setup and treated as read-only afterwards, so dispatch, hinting
// and completion need no locking.
type Registry struct {
	commands map[string]*Command
	names    []string // sorted registered names
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
	}
}

// Register adds a command to the registry. The first registration of a name
// wins; a second one fails with ErrDuplicateCommand and leaves the original
// in place.
func (r *Registry) Register(cmd *Command) error {
	if cmd.Name == "" || strings.ContainsFunc(cmd.Name, unicode.IsSpace) {
		return fmt.Errorf("%w: %q is empty or contains whitespace", ErrInvalidName, cmd.Name)
	}
	if isReserved(cmd.Name) {
		return fmt.Errorf("%w: %q", ErrReservedName, cmd.Name)
	}
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, cmd.Name)
	}
	if err := validateSignature(cmd); err != nil {
		return err
	}

	r.commands[cmd.Name] = cmd
	i := sort.SearchStrings(r.names, cmd.Name)
	r.names = append(r.names, "")
	copy(r.names[i+1:], r.names[i:])
	r.names[i] = cmd.Name
	return nil
}

// validateSignature enforces the arity model: at most one variadic spec,
// only in last position, and no required spec after an optional one.
func validateSignature(cmd *Command) error {
	if cmd.Handler == nil {
		return fmt.Errorf("%w: %s: nil handler", ErrInvalidSignature, cmd.Name)
	}
	seenOptional := false
	for i, spec := range cmd.Args {
		if spec.Variadic && i != len(cmd.Args)-1 {
			return fmt.Errorf("%w: %s: variadic argument %q is not last",
				ErrInvalidSignature, cmd.Name, spec.Name)
		}
		if seenOptional && !spec.Optional {
			return fmt.Errorf("%w: %s: required argument %q follows an optional one",
				ErrInvalidSignature, cmd.Name, spec.Name)
		}
		if spec.Optional {
			seenOptional = true
		}
	}
	return nil
}

// Lookup returns the command registered under name. Matching is exact and
// case-sensitive; there is no abbreviation at this level.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Commands iterates over the registered commands in alphabetical order.
// The sequence is finite and can be restarted.
func (r *Registry) Commands() iter.Seq[*Command] {
	return func(yield func(*Command) bool) {
		for _, name := range r.names {
			if !yield(r.commands[name]) {
				return
			}
		}
	}
}

// Names returns the sorted names of all registered commands.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// completionNames returns registered plus reserved names, sorted, for
// use by the completion and hint engines and by command prediction.
func (r *Registry) completionNames() []string {
	out := make([]string, 0, len(r.names)+len(reservedCommands))
	out = append(out, r.names...)
	for _, rc := range reservedCommands {
		out = append(out, rc.Name)
	}
	sort.Strings(out)
	return out
}

// prefixMatches returns every completion name starting with prefix, sorted.
// An empty prefix matches nothing.
func (r *Registry) prefixMatches(prefix string) []string {
	if prefix == "" {
		return nil
	}
	var out []string
	for _, name := range r.completionNames() {
		if strings.HasPrefix(name, prefix) {
			out = append(out, name)
		}
	}
	return out
}
