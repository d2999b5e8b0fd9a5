package transfer

import (
	"fmt"
	"strings"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// Mode selects how files are placed into their shard directories.
type Mode int

const (
	// ModeMove relocates each file, removing the source entry.
	ModeMove Mode = iota + 1

	// ModeCopy duplicates each file, preserving the source entry.
	ModeCopy
)

// String returns the lowercase mode name, used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case ModeMove:
		return "move"
	case ModeCopy:
		return "copy"
	default:
		return fmt.Sprintf("Unknown(%d)", int(m))
	}
}

// Verb returns the progressive form used in progress messages,
// "Moving" or "Copying".
func (m Mode) Verb() string {
	switch m {
	case ModeMove:
		return "Moving"
	case ModeCopy:
		return "Copying"
	default:
		return "Transferring"
	}
}

// ParseMode converts a command-line mode flag to a Mode. Both the short
// forms "m" and "c" and the full names "move" and "copy" are accepted,
// case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "m", "move":
		return ModeMove, nil
	case "c", "copy":
		return ModeCopy, nil
	default:
		return 0, errors.NewInvalidArgumentError(
			fmt.Sprintf("invalid transfer mode %q: must be m (move) or c (copy)", s))
	}
}
