package site

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DiscoverDocuments walks contentDir and returns the relative paths of
// documentation JSON files matching the include patterns and not the
// exclude patterns. index.json is never a document.
func DiscoverDocuments(contentDir string, include, exclude []string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(contentDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(contentDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if rel == "index.json" || !strings.HasSuffix(rel, ".json") {
			return nil
		}
		if len(include) > 0 && !matchesAny(rel, include) {
			return nil
		}
		if matchesAny(rel, exclude) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking content dir: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// matchesAny reports whether relPath matches any pattern, trying the
// full path first and the bare filename second. Patterns support **
// via doublestar.
func matchesAny(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.PathMatch(pattern, relPath); err == nil && matched {
			return true
		}
		base := filepath.Base(relPath)
		if matched, err := doublestar.PathMatch(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
