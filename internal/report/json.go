package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// JSONReporter formats a snapshot as JSON
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Format formats a snapshot as JSON and writes to the writer
func (r *JSONReporter) Format(snap *stats.Snapshot, writer io.Writer) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot to JSON: %w", err)
	}

	if _, err = writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns a snapshot as a JSON string
func (r *JSONReporter) FormatString(snap *stats.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot to JSON: %w", err)
	}
	return string(data), nil
}

// FormatSummary formats the snapshot totals and per-file counts as JSON
func (r *JSONReporter) FormatSummary(snap *stats.Snapshot) (string, error) {
	total := snap.Totals()
	summary := make(map[string]interface{})
	summary["version"] = snap.Version
	summary["id"] = snap.ID
	summary["timestamp"] = snap.Timestamp
	summary["tokens"] = total.Tokens
	summary["statements"] = total.Statements
	summary["diagnostics"] = len(total.Diagnostics)

	files := make(map[string]interface{})
	for path, fs := range snap.Files {
		files[path] = map[string]interface{}{
			"bytes":       fs.Bytes,
			"tokens":      fs.Tokens,
			"statements":  fs.Statements,
			"diagnostics": len(fs.Diagnostics),
		}
	}
	summary["files"] = files

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal summary to JSON: %w", err)
	}
	return string(data), nil
}

// Name returns the name of this reporter
func (r *JSONReporter) Name() string {
	return "json"
}
