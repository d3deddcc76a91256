//go:build windows

package fileutil

import "golang.org/x/sys/windows"

func crossDeviceErr() error { return windows.ERROR_NOT_SAME_DEVICE }
