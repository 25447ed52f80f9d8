package replkit

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
)

// Repl ties a command registry to a readline-backed terminal session and
// runs the read-tokenize-dispatch-report loop. Registration must be
// finished before New is called; the registry is read-only afterwards.
type Repl struct {
	reg  *Registry
	cfg  Config
	rl   *readline.Instance
	hist *History
	out  io.Writer
}

// New builds a shell session over the given registry. The line editor is
// configured with the completion and hint engines according to cfg, and
// persistent history is loaded when a history file is set.
func New(reg *Registry, cfg Config) (*Repl, error) {
	if cfg.Prompt == "" {
		cfg.Prompt = "> "
	}
	if cfg.TextWidth == 0 {
		cfg.TextWidth = 80
	}
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = 500
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	r := &Repl{reg: reg, cfg: cfg, out: out}

	if cfg.HistoryFile != "" {
		hist, err := OpenHistory(cfg.HistoryFile, cfg.HistoryLimit)
		if err != nil {
			return nil, err
		}
		r.hist = hist
	}

	rlConfig := &readline.Config{
		Prompt:            cfg.Prompt,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistoryLimit:      cfg.HistoryLimit,
		HistorySearchFold: true,
	}
	if cfg.WithCompletion {
		rlConfig.AutoComplete = NewCompleter(reg)
	}
	if cfg.WithHints {
		rlConfig.Painter = &hintPainter{reg: reg}
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		if r.hist != nil {
			r.hist.Close()
		}
		return nil, fmt.Errorf("failed to initialize line editor: %v", err)
	}
	r.rl = rl

	// Replay persisted history into the editor.
	if r.hist != nil {
		lines, err := r.hist.Recent(cfg.HistoryLimit)
		if err == nil {
			for _, line := range lines {
				rl.SaveHistory(line)
			}
		}
	}

	return r, nil
}

// Run executes read-dispatch cycles until a command or the user ends the
// session.
func (r *Repl) Run() {
	for r.Next() == Continue {
	}
}

// Next runs a single cycle: read one line, dispatch it, report the
// outcome. Ctrl-C clears the current line; Ctrl-D ends the session.
func (r *Repl) Next() Status {
	input, err := r.rl.Readline()
	if err != nil {
		if err == readline.ErrInterrupt {
			return Continue
		}
		if err == io.EOF {
			return Quit
		}
		fmt.Fprintf(r.out, "Error reading input: %v\n", err)
		return Continue
	}

	line := strings.TrimSpace(input)
	if line == "" {
		return Continue
	}
	if r.hist != nil {
		r.hist.Append(line)
	}
	return r.handleLine(line)
}

// handleLine tokenizes and dispatches one non-empty line, printing any
// failure. Every outcome continues the loop except the quit sentinel.
func (r *Repl) handleLine(line string) Status {
	tokens, err := Tokenize(line)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return Continue
	}
	if len(tokens) == 0 {
		return Continue
	}

	name := tokens[0].Text
	if _, known := r.reg.Lookup(name); !known && !isReserved(name) {
		resolved, ok := r.resolve(name)
		if !ok {
			return Continue
		}
		name = resolved
		tokens[0].Text = name
	}

	switch name {
	case "help":
		fmt.Fprintln(r.out, r.reg.Help(r.cfg.Description, r.cfg.TextWidth))
		return Continue
	case "exit", "quit":
		return Quit
	}

	status, err := r.reg.Dispatch(tokens)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		var arity *ArityError
		var conv *ConversionError
		if errors.As(err, &arity) || errors.As(err, &conv) {
			if cmd, ok := r.reg.Lookup(name); ok {
				fmt.Fprintf(r.out, "Usage: %s\n", cmd.Usage())
			}
		}
		return Continue
	}
	return status
}

// resolve applies command prediction to an unknown name: a unique prefix
// match is executed as if typed in full, anything else is reported with
// the candidate list.
func (r *Repl) resolve(name string) (string, bool) {
	var matches []string
	if r.cfg.PredictCommands {
		matches = r.reg.prefixMatches(name)
		if len(matches) == 1 {
			return matches[0], true
		}
	}
	fmt.Fprintf(r.out, "Command not found: %s\n", name)
	if len(matches) > 1 {
		fmt.Fprintf(r.out, "Candidates:\n  %s\n", strings.Join(matches, "\n  "))
	}
	fmt.Fprintln(r.out, "Use 'help' to see available commands.")
	return "", false
}

// Close releases the line editor and the history store.
func (r *Repl) Close() error {
	var firstErr error
	if r.rl != nil {
		if err := r.rl.Close(); err != nil {
			firstErr = err
		}
	}
	if r.hist != nil {
		if err := r.hist.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
