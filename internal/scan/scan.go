// Package scan enumerates candidate media files under a source root.
package scan

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Options controls a scan.
type Options struct {
	// Extensions is the case-insensitive allow-list. Entries may omit the
	// leading dot. An empty list matches nothing.
	Extensions []string
	// OnSkip, when set, is told about subdirectories that could not be read.
	OnSkip func(path string, err error)
}

// MediaFiles walks root and returns files whose extension is in the
// allow-list, sorted lexicographically.
func MediaFiles(root string, extensions []string) ([]string, error) {
	return Scan(root, Options{Extensions: extensions})
}

// Scan walks root recursively, hidden directories included. An error reading
// the root itself is returned; unreadable subdirectories are skipped and
// reported through OnSkip.
func Scan(root string, opts Options) ([]string, error) {
	allowed := extensionSet(opts.Extensions)
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if opts.OnSkip != nil {
				opts.OnSkip(path, err)
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := allowed[strings.ToLower(filepath.Ext(d.Name()))]; ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		return nil, &fs.PathError{Op: "scan", Path: root, Err: unwrapPathError(err)}
	}
	sort.Strings(files)
	return files, nil
}

func extensionSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, value := range values {
		ext := strings.ToLower(strings.TrimSpace(value))
		if ext == "" || ext == "." {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = struct{}{}
	}
	return set
}

func unwrapPathError(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
