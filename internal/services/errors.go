package services

import (
	"errors"
	"fmt"
	"strings"

	"aniorg/internal/fileutil"
)

var (
	ErrConfiguration     = errors.New("configuration error")
	ErrDirectoryCreation = errors.New("directory creation error")
	ErrMove              = errors.New("move error")
	ErrCopy              = errors.New("copy error")
	ErrLink              = errors.New("link error")
	ErrValidation        = errors.New("validation error")
)

// Failure kinds reported by FailureKind.
const (
	KindCrossDeviceLink   = "cross_device_link"
	KindLinkUnsupported   = "link_unsupported"
	KindLinkFailed        = "link_failed"
	KindDirectoryCreation = "directory_creation"
	KindMove              = "move"
	KindCopy              = "copy"
	KindConfiguration     = "configuration"
	KindValidation        = "validation"
	KindUnknown           = "unknown"
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		return fmt.Errorf("%s: %w", detail, err)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// FailureKind maps a per-file error to a stable snake_case label. The typed
// link errors win over the generic markers.
func FailureKind(err error) string {
	switch {
	case err == nil:
		return ""
	case fileutil.IsCrossDevice(err):
		return KindCrossDeviceLink
	case fileutil.IsLinkUnsupported(err):
		return KindLinkUnsupported
	case fileutil.IsLinkFailed(err), errors.Is(err, ErrLink):
		return KindLinkFailed
	case errors.Is(err, ErrDirectoryCreation):
		return KindDirectoryCreation
	case errors.Is(err, ErrMove):
		return KindMove
	case errors.Is(err, ErrCopy):
		return KindCopy
	case errors.Is(err, ErrConfiguration):
		return KindConfiguration
	case errors.Is(err, ErrValidation):
		return KindValidation
	default:
		return KindUnknown
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "operation failed"
	}
	return strings.Join(parts, ": ")
}
