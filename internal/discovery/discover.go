package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover recursively finds all SQL files under rootPath. Hidden directories
// (".git", ".sqlitelex", ...) are skipped. The result is sorted by relative path.
//
// rootPath may also name a single file, which is returned as-is regardless of
// its extension.
func Discover(rootPath string, exts []string) ([]DiscoveredFile, error) {
	absRoot, err := filepath.Abs(rootPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("path not found: %s", absRoot)
		}
		return nil, fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		return []DiscoveredFile{{
			Path:         absRoot,
			RelativePath: filepath.Base(absRoot),
			Type:         ClassifyPath(absRoot, exts...),
			Size:         info.Size(),
			ModTime:      info.ModTime(),
		}}, nil
	}

	var files []DiscoveredFile

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Skip directories we can't access
			if os.IsPermission(err) {
				return nil
			}
			return err
		}

		if d.IsDir() {
			if path != absRoot && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsSQLFile(d.Name(), exts...) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", path, err)
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path: %w", err)
		}

		files = append(files, DiscoveredFile{
			Path:         path,
			RelativePath: filepath.ToSlash(relPath),
			Type:         FileTypeSQL,
			Size:         fi.Size(),
			ModTime:      fi.ModTime(),
		})
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].RelativePath < files[j].RelativePath
	})
	return files, nil
}

// DiscoverAll runs Discover for each root and concatenates the results,
// dropping files reached through more than one root.
func DiscoverAll(roots []string, exts []string) ([]DiscoveredFile, error) {
	var all []DiscoveredFile
	seen := make(map[string]bool)

	for _, root := range roots {
		files, err := Discover(root, exts)
		if err != nil {
			return nil, fmt.Errorf("failed to discover files in %s: %w", root, err)
		}
		for _, file := range files {
			if !seen[file.Path] {
				all = append(all, file)
				seen[file.Path] = true
			}
		}
	}
	return all, nil
}
