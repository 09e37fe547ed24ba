package session

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Glob expands the given doublestar patterns ("testdata/**/*.star") into a
// sorted, de-duplicated list of files.  It is an error for a pattern to
// match nothing.
func Glob(patterns []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, fmt.Errorf("invalid session pattern: %q", pattern)
		}
		names, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		}
		if len(names) == 0 {
			return nil, fmt.Errorf("session pattern matched no files: %q", pattern)
		}
		sort.Strings(names)
		for _, name := range names {
			if seen[name] {
				continue
			}
			seen[name] = true
			files = append(files, name)
		}
	}

	return files, nil
}

// LoadFiles executes every file matching patterns in the session, in
// order.  The list of files executed is returned.
func LoadFiles(sess Session, patterns []string) ([]string, error) {
	files, err := Glob(patterns)
	if err != nil {
		return nil, err
	}
	for _, filename := range files {
		if err := loadFile(sess, filename); err != nil {
			return nil, err
		}
	}
	return files, nil
}

func loadFile(sess Session, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open session file: %w", err)
	}
	defer f.Close()
	return sess.Exec(filename, f)
}
