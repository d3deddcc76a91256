//go:build unix

package fileutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

func platformStrategies() []linkStrategy {
	return []linkStrategy{
		runtimeLink(),
		{name: "link(2)", link: unix.Link},
		{name: "ln", link: lnCommand},
	}
}

func platformCrossDevice(err error) bool {
	return errors.Is(err, unix.EXDEV)
}

func platformUnsupported(err error) bool {
	switch {
	case errors.Is(err, unix.ENOSYS), errors.Is(err, unix.EOPNOTSUPP), errors.Is(err, unix.ENOTSUP):
		return true
	case errors.Is(err, exec.ErrNotFound):
		return true
	default:
		return false
	}
}

func errnoCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return 0
}

// lnCommand is the last resort when neither the runtime nor link(2) can be
// used. Its stderr is the only classification signal it offers.
func lnCommand(oldname, newname string) error {
	path, err := exec.LookPath("ln")
	if err != nil {
		return fmt.Errorf("locate ln: %w", err)
	}
	var stderr bytes.Buffer
	cmd := exec.Command(path, "--", oldname, newname)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return &commandError{Command: "ln", Output: strings.TrimSpace(stderr.String()), Err: err}
	}
	return nil
}
