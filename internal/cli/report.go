package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/internal/report"
	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// Report renders the saved snapshot in config.StatsFile.  outputPath "-"
// or "" writes to stdout.
func Report(config *Config, outputPath string, stdout io.Writer) error {
	// Step 1: Load the snapshot
	snap, err := stats.NewStore(config.StatsFile).Load()
	if err != nil {
		if errors.HasCode(err, errors.ErrCodeStatsNotFound) {
			return fmt.Errorf("%w (run 'sqlitelex stats' first)", err)
		}
		return err
	}
	return writeReport(snap, config.ReportFormat, outputPath, stdout)
}

// writeReport formats snap and writes it to outputPath or stdout
func writeReport(snap *stats.Snapshot, format, outputPath string, stdout io.Writer) error {
	// Step 2: Get formatter
	formatter, err := report.GetFormatter(report.FormatType(format))
	if err != nil {
		return err
	}

	// Step 3: Format and output
	writer := stdout
	if outputPath != "-" && outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
	}

	if err := formatter.Format(snap, writer); err != nil {
		return fmt.Errorf("failed to format statistics: %w", err)
	}

	// Print success message to stderr so it does not mix with report output
	if writer != stdout {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", outputPath)
	}
	return nil
}

// ReportSummary prints a human-readable summary of a saved snapshot
func ReportSummary(statsFile string, w io.Writer) error {
	snap, err := stats.NewStore(statsFile).Load()
	if err != nil {
		return err
	}

	total := snap.Totals()
	fmt.Fprintf(w, "Snapshot %s: %d files, %d tokens, %d diagnostics\n\n",
		snap.ID, len(snap.Files), total.Tokens, len(total.Diagnostics))
	fmt.Fprintln(w, "Files:")
	for _, file := range snap.GetFiles() {
		fs := snap.Files[file]
		fmt.Fprintf(w, "  %s: %d tokens, %d statements, %d diagnostics\n",
			file, fs.Tokens, fs.Statements, len(fs.Diagnostics))
	}
	return nil
}
