package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"github.com/cybertec-postgresql/sqlitelex/internal/errors"
	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

func openConfiguredHistory(ctx context.Context, config *Config) (*stats.History, error) {
	if config.HistoryDB == "" {
		return nil, &ConfigError{
			Field:      "history_db",
			Value:      "",
			Message:    "no history database configured",
			Suggestion: "Set history_db in the config file or pass --history-db",
		}
	}
	return stats.OpenHistory(ctx, config.HistoryDB)
}

// HistoryList prints up to limit recorded snapshots, newest first
func HistoryList(ctx context.Context, config *Config, limit int, w io.Writer) error {
	h, err := openConfiguredHistory(ctx, config)
	if err != nil {
		return err
	}
	defer h.Close()

	entries, err := h.List(ctx, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintf(w, "No snapshots recorded in %s\n", h.Path())
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTAKEN\tFILES\tTOKENS\tSTATEMENTS\tDIAGNOSTICS\t")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t\n",
			e.ID, e.Timestamp.Local().Format(time.DateTime), e.Files, e.Tokens, e.Statements, e.Diagnostics)
	}
	return tw.Flush()
}

// HistoryShow renders one recorded snapshot like the report command
func HistoryShow(ctx context.Context, config *Config, id string, outputPath string, stdout io.Writer) error {
	snapID, err := uuid.Parse(id)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStatsNotFound,
			fmt.Sprintf("Invalid snapshot id: %s", id),
			"Snapshot ids are UUIDs",
			"Run 'sqlitelex history list' to see recorded ids")
	}

	h, err := openConfiguredHistory(ctx, config)
	if err != nil {
		return err
	}
	defer h.Close()

	snap, err := h.Get(ctx, snapID)
	if err != nil {
		return err
	}
	return writeReport(snap, config.ReportFormat, outputPath, stdout)
}
