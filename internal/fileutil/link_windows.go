//go:build windows

package fileutil

import (
	"errors"
	"os"
	"syscall"

	"golang.org/x/sys/windows"
)

func platformStrategies() []linkStrategy {
	return []linkStrategy{
		runtimeLink(),
		{name: "CreateHardLinkW", link: createHardLinkW},
	}
}

func createHardLinkW(oldname, newname string) error {
	to, err := windows.UTF16PtrFromString(newname)
	if err != nil {
		return &os.LinkError{Op: "CreateHardLinkW", Old: oldname, New: newname, Err: err}
	}
	from, err := windows.UTF16PtrFromString(oldname)
	if err != nil {
		return &os.LinkError{Op: "CreateHardLinkW", Old: oldname, New: newname, Err: err}
	}
	if err := windows.CreateHardLink(to, from, 0); err != nil {
		return &os.LinkError{Op: "CreateHardLinkW", Old: oldname, New: newname, Err: err}
	}
	return nil
}

func platformCrossDevice(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SAME_DEVICE)
}

func platformUnsupported(err error) bool {
	return errors.Is(err, windows.ERROR_NOT_SUPPORTED) || errors.Is(err, windows.ERROR_INVALID_FUNCTION)
}

func errnoCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 0
}
