package organizer

import (
	"fmt"
	"strings"
)

// Mode selects how a file reaches its destination.
type Mode int

const (
	ModeMove Mode = iota
	ModeCopy
	ModeLink
)

func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeCopy:
		return "copy"
	case ModeLink:
		return "link"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode accepts move, copy, or link in any case.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "move":
		return ModeMove, nil
	case "copy":
		return ModeCopy, nil
	case "link":
		return ModeLink, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want move, copy, or link)", value)
	}
}
