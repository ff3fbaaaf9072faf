// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrEmptyPath is returned by WriteFile for an empty destination.
var ErrEmptyPath = errors.New("path cannot be empty")

// markdownExtensions lists the file suffixes treated as markdown sources.
var markdownExtensions = []string{".md", ".markdown"}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists returns true if the path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsMarkdown reports whether name carries a markdown extension (case-insensitive).
func IsMarkdown(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range markdownExtensions {
		if ext == want {
			return true
		}
	}
	return false
}

// TrimMarkdownExt strips a markdown extension from name, if present.
func TrimMarkdownExt(name string) string {
	if !IsMarkdown(name) {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsFilePath returns true if the string looks like a file path rather than a name.
// A string containing path separators (/, \) is treated as a path.
//
// Examples:
//   - "site" -> false (name)
//   - "./site.yaml" -> true (relative path)
//   - "/etc/portfolio/site.yaml" -> true (absolute)
func IsFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// IsURL returns true if the string looks like a URL.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// WriteFile writes data to path, creating missing parent directories.
func WriteFile(path string, data []byte) error {
	if path == "" {
		return ErrEmptyPath
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { // #nosec G306 -- published site files
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
