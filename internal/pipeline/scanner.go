// Package pipeline loads exported expense files in bulk for reports.
package pipeline

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// exportExts are the extensions ScanPaths picks up inside directories.
var exportExts = map[string]bool{
	".csv":     true,
	".db":      true,
	".sqlite":  true,
	".sqlite3": true,
}

// ScanPaths expands the given paths into export files. Files are kept as
// given; directories are walked for known export extensions, sorted by
// path. Missing paths are an error.
func ScanPaths(paths []string) ([]string, error) {
	var files []string

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		var found []string
		err = filepath.WalkDir(p, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // intentionally skip unreadable entries
			}
			if d.IsDir() {
				return nil
			}
			if exportExts[strings.ToLower(filepath.Ext(path))] {
				found = append(found, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		sort.Strings(found)
		files = append(files, found...)
	}

	return files, nil
}
