package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// TextReporter formats a snapshot as aligned plain-text tables
type TextReporter struct {
	// TopKinds limits the token kind table; zero shows every kind
	TopKinds int
}

// NewTextReporter creates a new text reporter
func NewTextReporter() *TextReporter {
	return &TextReporter{}
}

// Format writes the file table, the token kind table and the diagnostics
func (r *TextReporter) Format(snap *stats.Snapshot, writer io.Writer) error {
	total := snap.Totals()
	tw := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Snapshot %s (%s)\n\n", snap.ID, snap.Timestamp.Format(time.RFC3339))

	fmt.Fprintln(tw, "FILE\tBYTES\tTOKENS\tSTATEMENTS\tDIAGNOSTICS\t")
	for _, file := range snap.GetFiles() {
		fs := snap.Files[file]
		name := file
		if fs.Truncated {
			name += " (truncated)"
		}
		if fs.Error != "" {
			name += " (failed)"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", name, fs.Bytes, fs.Tokens, fs.Statements, len(fs.Diagnostics))
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%d\t%d\t\n", total.Bytes, total.Tokens, total.Statements, len(total.Diagnostics))

	fmt.Fprintln(tw, "\nKIND\tCOUNT\t")
	kinds := stats.SortedCounts(total.Kinds)
	if r.TopKinds > 0 && len(kinds) > r.TopKinds {
		kinds = kinds[:r.TopKinds]
	}
	for _, kc := range kinds {
		fmt.Fprintf(tw, "%s\t%d\t\n", kc.Name, kc.Count)
	}

	fmt.Fprintln(tw, "\nSTATEMENT\tCOUNT\t")
	for _, kc := range stats.SortedCounts(total.StatementTypes) {
		fmt.Fprintf(tw, "%s\t%d\t\n", kc.Name, kc.Count)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}

	for _, file := range snap.GetFiles() {
		for _, d := range snap.Files[file].Diagnostics {
			if _, err := fmt.Fprintf(writer, "%s:%d:%d: %s %q\n", file, d.Line, d.Column, d.Kind, d.Text); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatString returns a snapshot as text
func (r *TextReporter) FormatString(snap *stats.Snapshot) (string, error) {
	var buf strings.Builder
	if err := r.Format(snap, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter
func (r *TextReporter) Name() string {
	return "text"
}
