package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/logger"
	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// Run executes the statistics workflow over searchPaths and prints a
// summary to w.  It returns the process exit code.
func Run(ctx context.Context, config *Config, searchPaths []string, w io.Writer) (int, error) {
	startTime := time.Now()
	log := logger.Default()

	if len(searchPaths) == 0 {
		searchPaths = []string{"."}
	}
	log.Debug("discovering SQL files", "paths", searchPaths, "extensions", config.Extensions)

	// Step 1: Discover SQL files
	files, err := discovery.DiscoverAll(searchPaths, config.Extensions)
	if err != nil {
		return runner.ExitError, fmt.Errorf("failed to discover SQL files: %w", err)
	}
	if len(files) == 0 {
		fmt.Fprintf(w, "No SQL files found (%v)\n", config.Extensions)
		return runner.ExitOK, nil
	}
	log.Debug("found SQL files", "count", len(files))

	// Step 2: Tokenize and split, in parallel when configured
	analyzer := runner.NewAnalyzer(log)
	pool := runner.NewWorkerPool(analyzer, config.Parallelism)
	results, err := pool.AnalyzeParallel(ctx, files)
	if err != nil {
		return runner.ExitError, fmt.Errorf("analysis interrupted: %w", err)
	}

	// Step 3: Collect statistics
	collector := stats.NewCollector()
	collector.AddResults(results)
	snap := collector.Snapshot()

	// Step 4: Save the snapshot
	store := stats.NewStore(config.StatsFile)
	if err := store.Save(snap); err != nil {
		return runner.ExitError, fmt.Errorf("failed to save statistics: %w", err)
	}

	// Step 5: Record history when configured
	if config.HistoryDB != "" {
		if err := recordHistory(ctx, config.HistoryDB, snap); err != nil {
			return runner.ExitError, err
		}
		log.Debug("snapshot recorded", "db", config.HistoryDB, "id", snap.ID)
	}

	// Step 6: Display summary
	summary := runner.Summarize(results)
	for _, res := range results {
		if res.Parsed == nil {
			continue
		}
		for _, d := range res.Parsed.Diagnostics {
			fmt.Fprintln(w, d.Error())
		}
	}

	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Files:       %d clean, %d with diagnostics, %d failed, %d total\n",
		summary.CleanFiles, summary.DiagnosticFiles, summary.FailedFiles, summary.TotalFiles)
	fmt.Fprintf(w, "Tokens:      %d in %d statements (%d bytes)\n",
		summary.TotalTokens, summary.TotalStatements, summary.TotalBytes)
	fmt.Fprintf(w, "Diagnostics: %d\n", summary.TotalDiagnostics)
	if summary.TruncatedFiles > 0 {
		fmt.Fprintf(w, "Truncated:   %d file(s) contain a NUL byte\n", summary.TruncatedFiles)
	}
	fmt.Fprintf(w, "Time:        %v\n", time.Since(startTime).Round(time.Millisecond))
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Statistics written to %s\n", config.StatsFile)

	return summary.ExitCode(config.Strict), nil
}

func recordHistory(ctx context.Context, path string, snap *stats.Snapshot) error {
	h, err := stats.OpenHistory(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to open history %s: %w", path, err)
	}
	defer h.Close()

	if err := h.Record(ctx, snap); err != nil {
		return fmt.Errorf("failed to record snapshot: %w", err)
	}
	return nil
}
