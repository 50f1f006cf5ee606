package discovery

import (
	"path/filepath"
	"strings"
)

// DefaultExtensions are the extensions treated as SQL when none are configured
var DefaultExtensions = []string{".sql"}

// ClassifyFile determines if a file is SQL based on its extension.
// Comparison is case-insensitive; exts defaults to DefaultExtensions.
func ClassifyFile(filename string, exts ...string) FileType {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	lower := strings.ToLower(filename)
	for _, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if strings.HasSuffix(lower, ext) && len(lower) > len(ext) {
			return FileTypeSQL
		}
	}
	return FileTypeOther
}

// ClassifyPath determines file type from a full path
func ClassifyPath(path string, exts ...string) FileType {
	return ClassifyFile(filepath.Base(path), exts...)
}

// IsSQLFile returns true if the file is a SQL file
func IsSQLFile(filename string, exts ...string) bool {
	return ClassifyFile(filename, exts...) == FileTypeSQL
}
