package runner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
)

// WorkerPool analyzes files concurrently with a bounded number of workers
type WorkerPool struct {
	analyzer   *Analyzer
	maxWorkers int
}

// NewWorkerPool creates a new worker pool for parallel analysis
func NewWorkerPool(analyzer *Analyzer, maxWorkers int) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		analyzer:   analyzer,
		maxWorkers: maxWorkers,
	}
}

// AnalyzeParallel analyzes files with at most maxWorkers in flight.  Results
// are in the order of files.  A file that fails is recorded as FileFailed and
// does not stop the others; cancelling ctx marks every file not yet started
// as failed and AnalyzeParallel then returns ctx.Err().
func (wp *WorkerPool) AnalyzeParallel(ctx context.Context, files []discovery.DiscoveredFile) ([]*FileResult, error) {
	if len(files) == 0 {
		return nil, nil
	}

	// If only one worker or one file, fall back to sequential analysis
	if wp.maxWorkers == 1 || len(files) == 1 {
		return wp.analyzer.AnalyzeBatch(ctx, files)
	}

	wp.analyzer.log.Debug("starting parallel analysis", "workers", wp.maxWorkers, "files", len(files))

	results := make([]*FileResult, len(files))

	var g errgroup.Group
	g.SetLimit(wp.maxWorkers)
	for i := range files {
		g.Go(func() error {
			// Each goroutine writes only its own slot.
			results[i], _ = wp.analyzer.Analyze(ctx, &files[i])
			return nil
		})
	}
	_ = g.Wait()

	return results, ctx.Err()
}
