package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/highlight"
	"github.com/cybertec-postgresql/sqlitelex/internal/logger"
	"github.com/cybertec-postgresql/sqlitelex/internal/report"
	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
	"github.com/cybertec-postgresql/sqlitelex/internal/stats"
)

// Generates the demo pages from testdata/sql.  Run from the repository root.
func main() {
	files, err := discovery.Discover("testdata/sql", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	pool := runner.NewWorkerPool(runner.NewAnalyzer(logger.Default()), 4)
	results, err := pool.AnalyzeParallel(context.Background(), files)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	collector := stats.NewCollector()
	collector.AddResults(results)

	out, err := os.Create("testdata/html_demo/report.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()
	if err := report.NewHTMLReporter().Format(collector.Snapshot(), out); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
		os.Exit(1)
	}

	src, err := os.ReadFile("testdata/sql/schema.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	page, err := os.Create("testdata/html_demo/schema.html")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer page.Close()
	if err := highlight.HTMLDocument(page, "schema.sql", string(src)); err != nil {
		fmt.Fprintf(os.Stderr, "Error highlighting: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Demo pages written to testdata/html_demo/")
}
