package types

import (
	"fmt"
	"strings"
)

// Config holds runtime configuration combining the config file, flags, and defaults
type Config struct {
	// Input
	Extensions []string `yaml:"extensions"` // File extensions treated as SQL by stats

	// Execution
	Parallelism int  `yaml:"parallelism"` // Max concurrent files (1 = sequential)
	Strict      bool `yaml:"strict"`      // Exit non-zero when diagnostics are found

	// Output
	StatsFile       string `yaml:"stats_file"`       // Statistics snapshot path
	HistoryDB       string `yaml:"history_db"`       // Optional SQLite snapshot history
	TokenFormat     string `yaml:"token_format"`     // tokens command: text or json
	HighlightFormat string `yaml:"highlight_format"` // highlight command: ansi or html
	ReportFormat    string `yaml:"report_format"`    // report command: json, text or html
	Verbose         bool   `yaml:"verbose"`          // Enable debug logging
}

// ConfigError describes one invalid configuration field
type ConfigError struct {
	Field      string
	Value      interface{}
	Message    string
	Suggestion string
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid %s: %s", e.Field, e.Message)
	if e.Suggestion != "" {
		fmt.Fprintf(&sb, "\nSuggestion: %s", e.Suggestion)
	}
	return sb.String()
}

// MaxParallelism bounds the worker pool size
const MaxParallelism = 100

var (
	tokenFormats     = []string{"text", "json"}
	highlightFormats = []string{"ansi", "html"}
	reportFormats    = []string{"json", "text", "html"}
)

// Validate checks the configuration and returns the first invalid field as
// a *ConfigError.
func (c *Config) Validate() error {
	if c.Parallelism < 1 || c.Parallelism > MaxParallelism {
		return &ConfigError{
			Field:      "parallelism",
			Value:      c.Parallelism,
			Message:    fmt.Sprintf("must be between 1 and %d", MaxParallelism),
			Suggestion: "Use --parallel 1 for sequential analysis",
		}
	}
	if c.StatsFile == "" {
		return &ConfigError{
			Field:      "stats_file",
			Value:      c.StatsFile,
			Message:    "must not be empty",
			Suggestion: "Set stats_file or pass --stats-file",
		}
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return &ConfigError{
				Field:      "extensions",
				Value:      ext,
				Message:    fmt.Sprintf("%q is not a file extension", ext),
				Suggestion: `Write extensions with a leading dot, e.g. ".sql"`,
			}
		}
	}
	if err := checkChoice("token_format", c.TokenFormat, tokenFormats); err != nil {
		return err
	}
	if err := checkChoice("highlight_format", c.HighlightFormat, highlightFormats); err != nil {
		return err
	}
	return checkChoice("report_format", c.ReportFormat, reportFormats)
}

func checkChoice(field, value string, allowed []string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return &ConfigError{
		Field:      field,
		Value:      value,
		Message:    fmt.Sprintf("unsupported value %q", value),
		Suggestion: "Use one of: " + strings.Join(allowed, ", "),
	}
}
