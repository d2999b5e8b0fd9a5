// Package transfer implements the file relocation primitives for a split run.
//
// The transfer package is responsible for:
//   - Move: relocate a file into its shard directory, removing the source entry
//   - Copy: duplicate a file into its shard directory, preserving the source entry
//
// Key Design Principles:
//   - One file at a time: transfers are sequential, blocking filesystem calls
//   - Native overwrite semantics: an existing destination file is replaced
//   - Mode dispatch: callers select a Transferer once, not per file
package transfer

import (
	"context"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// Transferer places a single source file at a destination path.
// Implementations exist for each Mode; select one with ForMode.
type Transferer interface {
	// Transfer places the file at src under dst. An existing dst is
	// overwritten. Failures are reported as TransferFailure errors
	// carrying the source path.
	Transfer(ctx context.Context, src, dst string) error

	// Mode returns the mode this transferer implements.
	Mode() Mode
}

// ForMode returns the Transferer implementing the given mode.
func ForMode(m Mode) (Transferer, error) {
	switch m {
	case ModeMove:
		return mover{}, nil
	case ModeCopy:
		return copier{}, nil
	default:
		return nil, errors.NewInvalidArgumentError("unknown transfer mode")
	}
}
