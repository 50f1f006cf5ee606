package stats

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is written into every snapshot
const SchemaVersion = "1.0"

// Snapshot holds token statistics for a set of files at one point in time
type Snapshot struct {
	Version   string                `json:"version"`   // Schema version
	ID        uuid.UUID             `json:"id"`        // Unique per snapshot
	Timestamp time.Time             `json:"timestamp"` // When the snapshot was taken
	Files     map[string]*FileStats `json:"files"`     // Key: relative file path
}

// FileStats holds the statistics of a single file
type FileStats struct {
	Bytes          int            `json:"bytes"`           // Consumable input length
	Tokens         int            `json:"tokens"`          // Number of tokens
	Statements     int            `json:"statements"`      // Number of statements
	Kinds          map[string]int `json:"kinds"`           // Key: token kind name
	StatementTypes map[string]int `json:"statement_types"` // Key: statement type name
	Diagnostics    []Diagnostic   `json:"diagnostics,omitempty"`
	Truncated      bool           `json:"truncated,omitempty"` // Input contained a NUL byte
	Error          string         `json:"error,omitempty"`     // Set if the file could not be analyzed
}

// Diagnostic is an Illegal or unterminated token
type Diagnostic struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	Kind   string `json:"kind"`
	Text   string `json:"text"`
}

// NewSnapshot creates an empty snapshot with a fresh ID
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Version:   SchemaVersion,
		ID:        uuid.New(),
		Timestamp: time.Now(),
		Files:     make(map[string]*FileStats),
	}
}

// NewFileStats creates empty statistics for one file
func NewFileStats() *FileStats {
	return &FileStats{
		Kinds:          make(map[string]int),
		StatementTypes: make(map[string]int),
	}
}

// add accumulates other into fs
func (fs *FileStats) add(other *FileStats) {
	fs.Bytes += other.Bytes
	fs.Tokens += other.Tokens
	fs.Statements += other.Statements
	for k, n := range other.Kinds {
		fs.Kinds[k] += n
	}
	for k, n := range other.StatementTypes {
		fs.StatementTypes[k] += n
	}
	fs.Diagnostics = append(fs.Diagnostics, other.Diagnostics...)
	fs.Truncated = fs.Truncated || other.Truncated
}

// GetFiles returns the file paths in sorted order
func (s *Snapshot) GetFiles() []string {
	files := make([]string, 0, len(s.Files))
	for file := range s.Files {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}

// Totals returns the statistics of all files combined.  Diagnostics are
// concatenated in file order.
func (s *Snapshot) Totals() *FileStats {
	total := NewFileStats()
	for _, file := range s.GetFiles() {
		total.add(s.Files[file])
	}
	return total
}

// KindCount is one row of a frequency table
type KindCount struct {
	Name  string
	Count int
}

// SortedCounts orders a count map by descending count, then name
func SortedCounts(counts map[string]int) []KindCount {
	out := make([]KindCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, KindCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
