package runner

import (
	"context"
	"time"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/logger"
	"github.com/cybertec-postgresql/sqlitelex/internal/parser"
)

// Analyzer tokenizes and splits SQL files
type Analyzer struct {
	log *logger.Logger
}

// NewAnalyzer creates a new analyzer logging to log, or to the default
// logger when log is nil
func NewAnalyzer(log *logger.Logger) *Analyzer {
	if log == nil {
		log = logger.Default()
	}
	return &Analyzer{log: log}
}

// Analyze reads and tokenizes a single file.  Read failures are reported in
// the result (Status FileFailed) as well as returned.
func (a *Analyzer) Analyze(ctx context.Context, file *discovery.DiscoveredFile) (*FileResult, error) {
	res := &FileResult{
		File:      file,
		StartTime: time.Now(),
		Status:    FilePending,
	}
	defer func() { res.EndTime = time.Now() }()

	if err := ctx.Err(); err != nil {
		res.Status = FileFailed
		res.Error = err
		return res, err
	}

	parsed, err := parser.Parse(file)
	if err != nil {
		res.Status = FileFailed
		res.Error = err
		a.log.Error("analysis failed", "file", file.RelativePath, "error", err)
		return res, err
	}

	res.Parsed = parsed
	if len(parsed.Diagnostics) > 0 {
		res.Status = FileDiagnostics
		for _, d := range parsed.Diagnostics {
			a.log.Debug("diagnostic", "file", d.File, "line", d.Line, "column", d.Column,
				"kind", d.Kind, "text", d.Text)
		}
	} else {
		res.Status = FileClean
	}
	if parsed.Truncated {
		a.log.Warn("input truncated at NUL byte", "file", file.RelativePath,
			"consumed", len(parsed.Source))
	}

	a.log.Debug("analyzed", "file", file.RelativePath, "tokens", len(parsed.Tokens),
		"statements", len(parsed.Statements))
	return res, nil
}

// AnalyzeBatch analyzes files sequentially.  A failing file does not stop the
// batch; only cancellation of ctx does.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, files []discovery.DiscoveredFile) ([]*FileResult, error) {
	results := make([]*FileResult, 0, len(files))
	for i := range files {
		res, _ := a.Analyze(ctx, &files[i])
		results = append(results, res)
	}
	return results, ctx.Err()
}
