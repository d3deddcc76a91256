// Package naming parses episodic media filenames that follow the
// bracket-tagged release convention:
//
//	[Publisher] Series Name - 01 [Tag][Tag].ext
//
// Parsing is pure and total. Anything that does not fit the convention is
// reported as a non-match, never as an error.
package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Whitespace includes Unicode space separators such as U+3000, which CJK
// release names often use between fields.
var episodePattern = regexp.MustCompile(`(?i)^\[([^\]]+)\][\s\p{Zs}]+(.+?)[\s\p{Zs}]+-[\s\p{Zs}]+(\d+)[\s\p{Zs}]+(\[.+\])(\.\w+)$`)

// EpisodeFile is the parsed form of a conforming filename.
type EpisodeFile struct {
	Publisher  string
	Series     string
	Episode    string
	Tags       string
	Extension  string
	SourcePath string
}

// FileName returns the base name used inside the series directory.
func (f EpisodeFile) FileName() string {
	return fmt.Sprintf("%s %s%s", f.Episode, f.Tags, f.Extension)
}

// Parse matches the base name of path against the naming convention.
func Parse(path string) (EpisodeFile, bool) {
	base := filepath.Base(path)
	if base == "" || base == "." || base == string(filepath.Separator) {
		return EpisodeFile{}, false
	}
	base = norm.NFC.String(base)

	m := episodePattern.FindStringSubmatch(base)
	if m == nil {
		return EpisodeFile{}, false
	}
	publisher := strings.TrimSpace(m[1])
	series := strings.TrimSpace(m[2])
	tags := strings.TrimSpace(m[4])
	if publisher == "" || series == "" {
		return EpisodeFile{}, false
	}
	return EpisodeFile{
		Publisher:  publisher,
		Series:     series,
		Episode:    padEpisode(m[3]),
		Tags:       tags,
		Extension:  strings.ToLower(m[5]),
		SourcePath: path,
	}, true
}

func padEpisode(digits string) string {
	if len(digits) >= 2 {
		return digits
	}
	return strings.Repeat("0", 2-len(digits)) + digits
}
