//go:build !unix

package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func checkAccess(path string, writable bool) error {
	dir, err := os.Open(path)
	if err != nil {
		return err
	}
	_ = dir.Close()
	if !writable {
		return nil
	}
	probe, err := os.CreateTemp(path, ".aniorg-access-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	_ = probe.Close()
	return os.Remove(name)
}

// SameFilesystem compares volume names, the closest portable signal.
func SameFilesystem(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", a, err)
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, fmt.Errorf("resolve %s: %w", b, err)
	}
	return strings.EqualFold(filepath.VolumeName(absA), filepath.VolumeName(absB)), nil
}
