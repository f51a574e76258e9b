package stylehooks

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ScanStats tracks file scanning statistics
type ScanStats struct {
	FilesDiscovered int // Total files found by glob patterns
	FilesScanned    int // Files actually scanned (after filtering)
	FilesSkipped    int // Files skipped due to filtering
}

// SourceFile is a scanned file and the declarations found in it.
type SourceFile struct {
	Path         string
	Content      string
	Declarations []Declaration
}

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isGeneratedAsset checks for minified bundles and vendored packages, which
// are never edited by hand
func isGeneratedAsset(path string) bool {
	slashed := filepath.ToSlash(path)
	return strings.HasSuffix(slashed, ".min.css") ||
		strings.HasPrefix(slashed, "node_modules/") ||
		strings.Contains(slashed, "/node_modules/")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
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

// shouldSkipFile determines if a file should be excluded from scanning
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip minified and vendored files
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isGeneratedAsset(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// expandGlobPatternsWithStats expands globs to files and tracks statistics
func expandGlobPatternsWithStats(patterns []string) ([]string, ScanStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := ScanStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			seen[match] = true
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
			stats.FilesScanned++
		}
	}

	return allFiles, stats, nil
}

// ScanFile reads a CSS or HTML file and extracts its declarations
func ScanFile(path string) (*SourceFile, error) {
	// #nosec G304 - path comes from configured scan patterns
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	content := string(data)

	var decls []Declaration
	if isHTMLFile(path) {
		decls = ExtractHTMLDeclarations(content)
	} else {
		decls = ExtractDeclarations(content)
	}

	return &SourceFile{Path: path, Content: content, Declarations: decls}, nil
}

// GetRelativePath returns a relative path from the current working directory
func GetRelativePath(absPath string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return absPath
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil {
		return absPath
	}

	return rel
}
