package replkit

import (
	"errors"
	"fmt"
)

// Registration-time errors. These are fatal to setup: the application has
// to fix its command set before the shell can be built.
var (
	ErrDuplicateCommand = errors.New("duplicate command name")
	ErrInvalidName      = errors.New("invalid command name")
	ErrReservedName     = errors.New("reserved command name")
	ErrInvalidSignature = errors.New("invalid command signature")
)

// UnknownCommandError reports a first token that matches no registered
// command.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Name)
}

// ArityError reports a token count outside the range the signature accepts.
// Max is -1 when the signature ends in a variadic spec.
type ArityError struct {
	Command string
	Got     int
	Min     int
	Max     int
}

func (e *ArityError) Error() string {
	expected := ""
	switch {
	case e.Max < 0:
		expected = fmt.Sprintf("at least %d", e.Min)
	case e.Min == e.Max:
		expected = fmt.Sprintf("%d", e.Min)
	default:
		expected = fmt.Sprintf("between %d and %d", e.Min, e.Max)
	}
	return fmt.Sprintf("%s: wrong number of arguments: got %d, expected %s",
		e.Command, e.Got, expected)
}

// ConversionError reports an argument token that could not be converted to
// its declared type. Index counts argument tokens from zero, excluding the
// command name itself.
type ConversionError struct {
	Command string
	Index   int
	Raw     string
	Want    ArgType
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("%s: invalid value %q for argument %d: expected %s",
		e.Command, e.Raw, e.Index, e.Want)
}

// UnterminatedQuoteError reports a quote opened at byte offset Pos that was
// never closed before the end of the line.
type UnterminatedQuoteError struct {
	Pos   int
	Quote rune
}

func (e *UnterminatedQuoteError) Error() string {
	return fmt.Sprintf("unterminated %c quote at column %d", e.Quote, e.Pos+1)
}
