package runner

import (
	"time"

	"github.com/cybertec-postgresql/sqlitelex/internal/discovery"
	"github.com/cybertec-postgresql/sqlitelex/internal/parser"
)

// FileResult represents the analysis of a single file
type FileResult struct {
	File      *discovery.DiscoveredFile
	Parsed    *parser.ParsedSQL // Nil if the file could not be read
	StartTime time.Time
	EndTime   time.Time
	Status    FileStatus
	Error     error // Non-nil if analysis failed
}

// FileStatus represents the outcome of analyzing one file
type FileStatus int

const (
	FilePending     FileStatus = iota
	FileClean                  // Tokenized without diagnostics
	FileDiagnostics            // Contains Illegal or unterminated tokens
	FileFailed                 // Could not be read or analysis was cancelled
)

// String returns a string representation of FileStatus
func (fs FileStatus) String() string {
	switch fs {
	case FilePending:
		return "pending"
	case FileClean:
		return "clean"
	case FileDiagnostics:
		return "diagnostics"
	case FileFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Duration returns the analysis duration
func (fr *FileResult) Duration() time.Duration {
	if fr.EndTime.IsZero() {
		return time.Since(fr.StartTime)
	}
	return fr.EndTime.Sub(fr.StartTime)
}

// Summary summarizes the analysis of all files
type Summary struct {
	TotalFiles       int
	CleanFiles       int
	DiagnosticFiles  int
	FailedFiles      int
	TruncatedFiles   int
	TotalBytes       int
	TotalTokens      int
	TotalStatements  int
	TotalDiagnostics int
	TotalDuration    time.Duration
}

// Exit codes of the command-line tool
const (
	ExitOK          = 0
	ExitError       = 1
	ExitConfig      = 2
	ExitDiagnostics = 3
)

// ExitCode returns the process exit code for the analyzed files.  Unreadable
// files always fail the run; diagnostics only do when strict is set.
func (s *Summary) ExitCode(strict bool) int {
	switch {
	case s.FailedFiles > 0:
		return ExitError
	case strict && s.TotalDiagnostics > 0:
		return ExitDiagnostics
	default:
		return ExitOK
	}
}

// Summarize aggregates file results
func Summarize(results []*FileResult) *Summary {
	s := &Summary{TotalFiles: len(results)}
	for _, r := range results {
		if r == nil {
			continue
		}
		s.TotalDuration += r.Duration()
		switch r.Status {
		case FileClean:
			s.CleanFiles++
		case FileDiagnostics:
			s.DiagnosticFiles++
		case FileFailed:
			s.FailedFiles++
		}
		if r.Parsed == nil {
			continue
		}
		if r.Parsed.Truncated {
			s.TruncatedFiles++
		}
		s.TotalBytes += len(r.Parsed.Source)
		s.TotalTokens += len(r.Parsed.Tokens)
		s.TotalStatements += len(r.Parsed.Statements)
		s.TotalDiagnostics += len(r.Parsed.Diagnostics)
	}
	return s
}
