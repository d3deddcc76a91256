package fileutil

import (
	"errors"
	"fmt"
	"strings"
)

// CrossDeviceLinkError reports a hard link whose source and target live on
// different filesystems. Link mode cannot bridge volumes; pick copy or move.
type CrossDeviceLinkError struct {
	Source string
	Target string
	Err    error
}

func (e *CrossDeviceLinkError) Error() string {
	return fmt.Sprintf("hard link %q -> %q: source and target must be on the same filesystem (use copy or move mode): %v", e.Source, e.Target, e.Err)
}

func (e *CrossDeviceLinkError) Unwrap() error { return e.Err }

// LinkUnsupportedError reports that no strategy could create hard links on
// this platform or filesystem.
type LinkUnsupportedError struct {
	Source     string
	Target     string
	Strategies []string
	Err        error
}

func (e *LinkUnsupportedError) Error() string {
	tried := "none"
	if len(e.Strategies) > 0 {
		tried = strings.Join(e.Strategies, ", ")
	}
	if e.Err != nil {
		return fmt.Sprintf("hard link %q -> %q: not supported on this system (tried %s): %v", e.Source, e.Target, tried, e.Err)
	}
	return fmt.Sprintf("hard link %q -> %q: not supported on this system (tried %s)", e.Source, e.Target, tried)
}

func (e *LinkUnsupportedError) Unwrap() error { return e.Err }

// LinkFailedError is any other hard-link failure. Code holds the OS error
// number when the platform reported one.
type LinkFailedError struct {
	Source   string
	Target   string
	Strategy string
	Code     int
	Err      error
}

func (e *LinkFailedError) Error() string {
	if e.Code != 0 {
		return fmt.Sprintf("hard link %q -> %q via %s failed (code %d): %v", e.Source, e.Target, e.Strategy, e.Code, e.Err)
	}
	return fmt.Sprintf("hard link %q -> %q via %s failed: %v", e.Source, e.Target, e.Strategy, e.Err)
}

func (e *LinkFailedError) Unwrap() error { return e.Err }

// IsCrossDevice reports whether err is (or wraps) a CrossDeviceLinkError.
func IsCrossDevice(err error) bool {
	var e *CrossDeviceLinkError
	return errors.As(err, &e)
}

// IsLinkUnsupported reports whether err is (or wraps) a LinkUnsupportedError.
func IsLinkUnsupported(err error) bool {
	var e *LinkUnsupportedError
	return errors.As(err, &e)
}

// IsLinkFailed reports whether err is (or wraps) a LinkFailedError.
func IsLinkFailed(err error) bool {
	var e *LinkFailedError
	return errors.As(err, &e)
}

// commandError is a failed external link command together with the
// diagnostic it printed.
type commandError struct {
	Command string
	Output  string
	Err     error
}

func (e *commandError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", e.Command, e.Output, e.Err)
}

func (e *commandError) Unwrap() error { return e.Err }

// reason returns the trailing strerror-style segment of the diagnostic. The
// paths quoted earlier in the line are dropped so file names never feed
// classification.
func (e *commandError) reason() string {
	line := strings.TrimSpace(e.Output)
	if i := strings.LastIndex(line, "\n"); i >= 0 {
		line = line[i+1:]
	}
	if i := strings.LastIndex(line, ": "); i >= 0 {
		line = line[i+2:]
	}
	return strings.ToLower(line)
}

// crossDeviceMessages are matched only against the diagnostic of an external
// command, which carries no errno. Localized messages will miss.
var crossDeviceMessages = []string{
	"cross-device",
	"different device",
	"different disk drive",
	"not same device",
}

func isCrossDevice(err error) bool {
	if err == nil {
		return false
	}
	if platformCrossDevice(err) {
		return true
	}
	var cmdErr *commandError
	if !errors.As(err, &cmdErr) {
		return false
	}
	reason := cmdErr.reason()
	for _, fragment := range crossDeviceMessages {
		if strings.Contains(reason, fragment) {
			return true
		}
	}
	return false
}

func isUnsupported(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, errors.ErrUnsupported) {
		return true
	}
	return platformUnsupported(err)
}
