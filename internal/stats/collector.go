package stats

import (
	"sync"

	"github.com/cybertec-postgresql/sqlitelex/internal/runner"
	"github.com/cybertec-postgresql/sqlitelex/pkg/tokenizer"
)

// Collector aggregates analysis results into a snapshot.  It is safe for
// concurrent use.
type Collector struct {
	mu       sync.Mutex
	snapshot *Snapshot
}

// NewCollector creates a new statistics collector
func NewCollector() *Collector {
	return &Collector{
		snapshot: NewSnapshot(),
	}
}

// AddResult records the statistics of one analyzed file.  A result for a
// path already present replaces the earlier one.
func (c *Collector) AddResult(res *runner.FileResult) {
	fs := FromResult(res)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot.Files[res.File.RelativePath] = fs
}

// AddResults records several results
func (c *Collector) AddResults(results []*runner.FileResult) {
	for _, res := range results {
		if res != nil {
			c.AddResult(res)
		}
	}
}

// FromResult computes the statistics of one analyzed file
func FromResult(res *runner.FileResult) *FileStats {
	fs := NewFileStats()
	if res.Error != nil {
		fs.Error = res.Error.Error()
	}
	p := res.Parsed
	if p == nil {
		return fs
	}

	fs.Bytes = len(tokenizer.Consumable(p.Source))
	fs.Truncated = p.Truncated
	fs.Tokens = len(p.Tokens)
	fs.Statements = len(p.Statements)
	for _, tok := range p.Tokens {
		fs.Kinds[tok.Kind.String()]++
	}
	for _, stmt := range p.Statements {
		fs.StatementTypes[stmt.Type.String()]++
	}
	for _, d := range p.Diagnostics {
		fs.Diagnostics = append(fs.Diagnostics, Diagnostic{
			Line:   d.Line,
			Column: d.Column,
			Kind:   d.Kind.String(),
			Text:   d.Text,
		})
	}
	return fs
}

// Snapshot returns the aggregated statistics
func (c *Collector) Snapshot() *Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot
}

// Reset discards all collected statistics and starts a new snapshot
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = NewSnapshot()
}

// Merge adds another collector's files to this one.  Files present in both
// are summed.
func (c *Collector) Merge(other *Collector) {
	src := other.Snapshot()

	c.mu.Lock()
	defer c.mu.Unlock()
	for file, ofs := range src.Files {
		fs, exists := c.snapshot.Files[file]
		if !exists {
			fs = NewFileStats()
			c.snapshot.Files[file] = fs
		}
		fs.add(ofs)
		if fs.Error == "" {
			fs.Error = ofs.Error
		}
	}
}
