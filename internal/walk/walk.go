// Package walk resolves a grepx invocation's file arguments into a concrete
// list of file paths, recursing into directories when asked.
package walk

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/karrick/godirwalk"
	"github.com/pkg/errors"
)

// Collect resolves paths into a flat list of regular files. When recursive
// is false, a directory argument is an error (matching original_source/'s
// "is a directory" exit-1 behavior); when true, directories are walked and
// any entry (file or directory) whose base name starts with "." is skipped.
func Collect(paths []string, recursive bool) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, errors.Wrapf(err, "%s", p)
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		if !recursive {
			return nil, errors.Errorf("%s: is a directory", p)
		}

		collected, err := collectDir(p)
		if err != nil {
			return nil, err
		}
		files = append(files, collected...)
	}
	return files, nil
}

func collectDir(root string) ([]string, error) {
	var files []string
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			base := filepath.Base(path)
			if base != "." && strings.HasPrefix(base, ".") {
				if de.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !de.IsDir() {
				files = append(files, path)
			}
			return nil
		},
		Unsorted: false,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "%s", root)
	}
	return files, nil
}
