package textutil

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SanitizeToken converts a string to a lowercase filesystem-safe token.
// Letters are lowercased, digits and hyphens/underscores are kept, everything
// else becomes an underscore. Returns "unknown" for empty input.
func SanitizeToken(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-")
	if out == "" {
		return "unknown"
	}
	return out
}

// PathToken names a directory with a readable prefix taken from its last
// element plus a stable hash of the cleaned absolute path, so distinct
// directories never share a token.
func PathToken(path string) string {
	cleaned := filepath.Clean(strings.TrimSpace(path))
	if abs, err := filepath.Abs(cleaned); err == nil {
		cleaned = abs
	}
	sum := uuid.NewSHA1(uuid.NameSpaceURL, []byte("file://"+filepath.ToSlash(cleaned)))
	return SanitizeToken(filepath.Base(cleaned)) + "-" + sum.String()[:8]
}
