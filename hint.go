package replkit

import (
	"strings"

	"github.com/chzyer/readline"
)

// Hint produces advisory text describing the expected remaining input for
// a partial line. The result is exactly what should be rendered after the
// cursor, separator included; it never affects parsing. Hints are only
// produced when the cursor sits at the end of the line.
//
// An empty line hints the available command names. Once a command name is
// recognized, the hint shows the unsatisfied remainder of its signature.
// While the name is still being typed, a unique prefix match hints the
// rest of the name plus the signature. Unrecognized input hints nothing.
func (r *Registry) Hint(line string, pos int) string {
	if pos != len(line) {
		return ""
	}
	tokens := tokenizeLenient(line)
	if len(tokens) == 0 {
		return "commands: " + strings.Join(r.completionNames(), " ")
	}

	first := tokens[0]
	if len(tokens) == 1 && !endsInSpace(line) {
		return r.hintCommandName(first.Text)
	}

	cmd, ok := r.Lookup(first.Text)
	if !ok {
		return ""
	}
	remaining := remainingSpecs(cmd, len(tokens)-1)
	if len(remaining) == 0 {
		return ""
	}
	labels := make([]string, len(remaining))
	for i, spec := range remaining {
		labels[i] = spec.Label()
	}
	hint := strings.Join(labels, " ")
	if !endsInSpace(line) {
		hint = " " + hint
	}
	return hint
}

// hintCommandName hints while the first token is still being typed: the
// full signature for an exact match, or the rest of the name when exactly
// one command matches the prefix.
func (r *Registry) hintCommandName(prefix string) string {
	if cmd, ok := r.Lookup(prefix); ok {
		if sig := cmd.Signature(); sig != "" {
			return " " + sig
		}
		return ""
	}
	matches := r.prefixMatches(prefix)
	if len(matches) != 1 {
		return ""
	}
	rest := strings.TrimPrefix(matches[0], prefix)
	if cmd, ok := r.Lookup(matches[0]); ok {
		if sig := cmd.Signature(); sig != "" {
			return rest + " " + sig
		}
	}
	return rest
}

// remainingSpecs returns the specs not yet satisfied after the given
// number of argument tokens. A trailing variadic spec is never considered
// satisfied, since it keeps accepting tokens.
func remainingSpecs(cmd *Command, satisfied int) []ArgSpec {
	specs := cmd.Args
	if len(specs) == 0 {
		return nil
	}
	if specs[len(specs)-1].Variadic && satisfied >= len(specs) {
		satisfied = len(specs) - 1
	}
	if satisfied >= len(specs) {
		return nil
	}
	return specs[satisfied:]
}

// hintPainter renders hints inline after the cursor in a dim color. It
// implements readline's Painter interface.
type hintPainter struct {
	reg *Registry
}

var _ readline.Painter = (*hintPainter)(nil)

func (p *hintPainter) Paint(line []rune, pos int) []rune {
	if pos != len(line) {
		return line
	}
	hint := p.reg.Hint(string(line), len(string(line)))
	if hint == "" {
		return line
	}
	return append(line, []rune("\033[90m"+hint+"\033[0m")...)
}
