//go:build unix

package preflight

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func checkAccess(path string, writable bool) error {
	mode := uint32(unix.R_OK | unix.X_OK)
	if writable {
		mode |= unix.W_OK
	}
	return unix.Access(path, mode)
}

// SameFilesystem compares the device IDs of two existing paths.
func SameFilesystem(a, b string) (bool, error) {
	var sa, sb unix.Stat_t
	if err := unix.Stat(a, &sa); err != nil {
		return false, fmt.Errorf("stat %s: %w", a, err)
	}
	if err := unix.Stat(b, &sb); err != nil {
		return false, fmt.Errorf("stat %s: %w", b, err)
	}
	return sa.Dev == sb.Dev, nil
}
