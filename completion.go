package replkit

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"
)

// Complete computes TAB-completion candidates for a partial line with the
// cursor at byte offset pos. It returns the candidates in alphabetical
// order together with the byte offset of the token being completed. The
// function is pure: identical input against an unchanged registry always
// yields identical output.
//
// Within the command-name token the candidates are all registered and
// reserved names with a matching case-sensitive prefix. Within an argument
// token, boolean arguments complete from the fixed literal set and other
// types consult the command's Complete capability, if declared.
func (r *Registry) Complete(line string, pos int) ([]string, int) {
	if pos < 0 || pos > len(line) {
		pos = len(line)
	}
	typed := line[:pos]
	tokens := tokenizeLenient(typed)
	newToken := endsInSpace(typed)

	if len(tokens) == 0 {
		return r.completionNames(), pos
	}
	if len(tokens) == 1 && !newToken {
		return filterPrefix(r.completionNames(), tokens[0].Text), tokens[0].Start
	}

	cmd, ok := r.Lookup(tokens[0].Text)
	if !ok {
		return nil, pos
	}

	argIndex := len(tokens) - 1
	prefix := ""
	start := pos
	if !newToken {
		last := tokens[len(tokens)-1]
		argIndex--
		prefix = last.Text
		start = last.Start
	}

	spec, ok := argSpecAt(cmd, argIndex)
	if !ok {
		return nil, start
	}

	var candidates []string
	switch {
	case spec.Type == TypeBool:
		candidates = boolCandidates()
	case cmd.Complete != nil:
		candidates = append([]string(nil), cmd.Complete(argIndex, prefix)...)
		sort.Strings(candidates)
	}
	return filterPrefix(candidates, prefix), start
}

// argSpecAt maps an argument token index onto the signature. Indexes past
// the end land on a trailing variadic spec when there is one.
func argSpecAt(cmd *Command, i int) (ArgSpec, bool) {
	if i < len(cmd.Args) {
		return cmd.Args[i], true
	}
	if n := len(cmd.Args); n > 0 && cmd.Args[n-1].Variadic {
		return cmd.Args[n-1], true
	}
	return ArgSpec{}, false
}

// filterPrefix keeps the candidates starting with prefix. Order is
// preserved; an empty prefix keeps everything.
func filterPrefix(candidates []string, prefix string) []string {
	if prefix == "" {
		return candidates
	}
	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}

// Completer adapts the completion engine to readline's AutoCompleter
// interface so the line editor can call it per keystroke.
type Completer struct {
	reg *Registry
}

// NewCompleter creates a readline auto-completer backed by the registry.
func NewCompleter(reg *Registry) *Completer {
	return &Completer{reg: reg}
}

var _ readline.AutoCompleter = (*Completer)(nil)

// Do implements readline.AutoCompleter. It returns candidate suffixes
// relative to the partial token under the cursor, each followed by a space
// the way readline's own PrefixCompleter does.
func (c *Completer) Do(line []rune, pos int) ([][]rune, int) {
	typed := string(line[:pos])
	candidates, start := c.reg.Complete(typed, len(typed))
	if len(candidates) == 0 {
		return nil, 0
	}
	prefix := ""
	if start < len(typed) {
		prefix = typed[start:]
	}
	var out [][]rune
	for _, cand := range candidates {
		if !strings.HasPrefix(cand, prefix) {
			continue
		}
		out = append(out, []rune(cand[len(prefix):]+" "))
	}
	return out, len([]rune(prefix))
}
