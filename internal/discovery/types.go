package discovery

import "time"

// DiscoveredFile represents a SQL file discovered during filesystem traversal
type DiscoveredFile struct {
	Path         string    // Absolute path to file
	RelativePath string    // Path relative to search root
	Type         FileType  // SQL or other
	Size         int64     // Size in bytes
	ModTime      time.Time // Last modification time
}

// FileType indicates whether a file holds SQL text
type FileType int

const (
	FileTypeSQL   FileType = iota // Matches one of the configured extensions
	FileTypeOther                 // Anything else
)

// String returns a string representation of FileType
func (ft FileType) String() string {
	switch ft {
	case FileTypeSQL:
		return "sql"
	case FileTypeOther:
		return "other"
	default:
		return "unknown"
	}
}
