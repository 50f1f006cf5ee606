package report

import (
	"io"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// Formatter is an interface for statistics report formatters
type Formatter interface {
	// Format formats a snapshot and writes to the writer
	Format(snap *stats.Snapshot, writer io.Writer) error

	// FormatString returns a snapshot as a string
	FormatString(snap *stats.Snapshot) (string, error)

	// Name returns the name of this formatter
	Name() string
}

// FormatType represents supported report formats
type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatText FormatType = "text"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the specified format type
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatText:
		return NewTextReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, errors.UnsupportedFormat(string(format), SupportedFormats())
	}
}

// FormatToWriter formats a snapshot to a writer using the specified format
func FormatToWriter(snap *stats.Snapshot, format FormatType, writer io.Writer) error {
	formatter, err := GetFormatter(format)
	if err != nil {
		return err
	}
	return formatter.Format(snap, writer)
}

// FormatToString formats a snapshot to a string using the specified format
func FormatToString(snap *stats.Snapshot, format FormatType) (string, error) {
	formatter, err := GetFormatter(format)
	if err != nil {
		return "", err
	}
	return formatter.FormatString(snap)
}

// ValidFormat checks if a format string is valid
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatJSON, FormatText, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns a list of supported format names
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatText), string(FormatHTML)}
}
