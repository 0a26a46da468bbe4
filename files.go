package cssmin

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks stylesheet discovery statistics.
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesMinified   int // Files actually minified (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isMinifiedOutput checks whether a file already carries the minified
// suffix, so reruns do not re-minify their own output.
func isMinifiedOutput(path, suffix string) bool {
	return strings.HasSuffix(path, suffix)
}

// loadGitIgnore loads the .gitignore file once (thread-safe).
// Gracefully degrades if .gitignore doesn't exist.
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a stylesheet should be excluded from
// minification.
//
// Two-layer filtering:
// 1. Pattern check (fast): skip files that are already minified output
// 2. Gitignore check: skip gitignored files (only for relative paths)
func shouldSkipFile(path, suffix string) bool {
	if isMinifiedOutput(path, suffix) {
		return true
	}

	// Only apply gitignore to relative paths (paths within the project).
	// Absolute paths (like /tmp/...) should not be affected by it.
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// expandGlobPatterns expands glob patterns to stylesheet paths, deduped,
// filtered, and with discovery statistics.
func expandGlobPatterns(patterns []string, suffix string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match, suffix) {
				stats.FilesSkipped++
			} else {
				allFiles = append(allFiles, match)
				seen[match] = true
				stats.FilesMinified++
			}
		}
	}

	return allFiles, stats, nil
}

// outputPath computes where the minified form of path is written.
func outputPath(path, outputDir, suffix string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + suffix
	if outputDir != "" {
		return filepath.Join(outputDir, base)
	}
	return filepath.Join(filepath.Dir(path), base)
}
