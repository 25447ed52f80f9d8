package replkit

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls how a shell session behaves. Callers should start from
// DefaultConfig (or LoadConfig) and override fields, since the zero value
// disables hints, completion and prediction.
type Config struct {
	// Prompt string shown before each line.
	Prompt string `yaml:"prompt"`
	// Description shown at the top of the help message.
	Description string `yaml:"description"`
	// TextWidth used when wrapping help text; <= 0 disables wrapping.
	TextWidth int `yaml:"text_width"`
	// HistoryFile is the SQLite history database path; empty disables
	// persistent history.
	HistoryFile string `yaml:"history_file"`
	// HistoryLimit caps the number of retained history entries.
	HistoryLimit int `yaml:"history_limit"`
	// WithHints renders inline hints for the expected remaining input.
	WithHints bool `yaml:"hints"`
	// WithCompletion enables TAB-completion.
	WithCompletion bool `yaml:"completion"`
	// PredictCommands executes a uniquely prefix-matching command name as
	// if it had been typed in full.
	PredictCommands bool `yaml:"predict_commands"`

	// Out receives shell output; defaults to os.Stdout.
	Out io.Writer `yaml:"-"`
}

// DefaultConfig returns the standard shell configuration.
func DefaultConfig() Config {
	return Config{
		Prompt:          "> ",
		TextWidth:       80,
		HistoryLimit:    500,
		WithHints:       true,
		WithCompletion:  true,
		PredictCommands: true,
	}
}

// LoadConfig reads a YAML configuration file, overlaying it onto the
// defaults. A missing file yields the defaults; malformed YAML is an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %v", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %v", err)
	}
	return cfg, nil
}
