//go:build !unix && !windows

package fileutil

import "errors"

func crossDeviceErr() error {
	return &commandError{Command: "ln", Output: "ln: invalid cross-device link", Err: errors.New("exit status 1")}
}
