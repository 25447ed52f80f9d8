package replkit

import (
	"strconv"
	"strings"
)

// ArgType identifies the declared type of a command argument.
type ArgType int

const (
	TypeText ArgType = iota
	TypeInt
	TypeFloat
	TypeBool
)

// String returns the name used for the type in signatures and error messages.
func (t ArgType) String() string {
	switch t {
	case TypeText:
		return "text"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ArgSpec describes a single positional argument of a command.
// Order within Command.Args is significant. A variadic spec consumes all
// remaining tokens and must be the last spec of the signature.
type ArgSpec struct {
	Name     string
	Type     ArgType
	Optional bool
	Variadic bool
}

// Label renders the spec the way it appears in signatures and hints,
// e.g. "<name:text>", "[age:int]" or "<files:text...>".
func (s ArgSpec) Label() string {
	var b strings.Builder
	left, right := "<", ">"
	if s.Optional {
		left, right = "[", "]"
	}
	b.WriteString(left)
	b.WriteString(s.Name)
	b.WriteString(":")
	b.WriteString(s.Type.String())
	if s.Variadic {
		b.WriteString("...")
	}
	b.WriteString(right)
	return b.String()
}

// Status tells the REPL loop what to do after a command has run.
type Status int

const (
	// Continue keeps the loop running.
	Continue Status = iota
	// Quit ends the session. It is a sentinel, not an error.
	Quit
)

// Handler is the function invoked with the converted arguments of a command.
// Returning Quit ends the REPL session; a returned error is reported to the
// user and the loop continues.
type Handler func(args []Value) (Status, error)

// Command is a single named operation callable from the shell.
// Commands are registered once during setup and never mutated afterwards.
type Command struct {
	Name        string
	Description string
	Args        []ArgSpec
	Handler     Handler

	// Complete, when set, supplies completion candidates for the argument
	// at the given index. The prefix is what the user has typed so far.
	Complete func(arg int, prefix string) []string
}

// Signature renders the argument part of the command, e.g.
// "<name:text> [age:int]". Empty for commands without arguments.
func (c *Command) Signature() string {
	labels := make([]string, len(c.Args))
	for i, spec := range c.Args {
		labels[i] = spec.Label()
	}
	return strings.Join(labels, " ")
}

// Usage renders the command name followed by its signature.
func (c *Command) Usage() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + c.Signature()
}

// arity returns the minimum and maximum number of argument tokens the
// signature accepts. max is -1 when a variadic spec makes it unbounded.
func (c *Command) arity() (min, max int) {
	for _, spec := range c.Args {
		if spec.Variadic {
			if !spec.Optional {
				min++
			}
			return min, -1
		}
		if !spec.Optional {
			min++
		}
		max++
	}
	return min, max
}

// Value is a token converted to a concrete value tagged with its type.
// Only the field matching Type carries meaning; Raw keeps the original
// token text for reporting.
type Value struct {
	Type  ArgType
	Str   string
	Int   int64
	Float float64
	Bool  bool
	Raw   string
}

// String formats the value such that converting the result back with the
// same type yields an equal value.
func (v Value) String() string {
	switch v.Type {
	case TypeInt:
		return strconv.FormatInt(v.Int, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TypeBool:
		return strconv.FormatBool(v.Bool)
	default:
		return v.Str
	}
}
