package eem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Eligible reports whether name has a recognized sample data
// extension. Matching is case-insensitive on the extension.
func Eligible(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}

// ListSamples returns the eligible sample file names in dir, sorted
// lexicographically so processing order is stable across platforms.
// A missing or unreadable directory is an error; there is no partial
// recovery at this stage.
func ListSamples(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list samples: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !Eligible(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	return names, nil
}
