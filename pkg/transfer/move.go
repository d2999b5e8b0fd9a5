package transfer

import (
	"context"
	stderrors "errors"
	"os"
	"syscall"

	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// mover relocates files with os.Rename, falling back to copy-then-remove
// when source and destination live on different filesystems.
type mover struct{}

// Ensure mover implements Transferer.
var _ Transferer = mover{}

// Transfer moves the file at src to dst, overwriting any existing dst.
func (mover) Transfer(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}

	// Rename cannot cross filesystem boundaries. Fall back to a full copy
	// followed by removal of the source entry.
	if stderrors.Is(err, syscall.EXDEV) {
		if err := copyFile(src, dst); err != nil {
			return errors.NewTransferFailureError(src, err)
		}
		if err := os.Remove(src); err != nil {
			return errors.NewTransferFailureError(src, err)
		}
		return nil
	}

	return errors.NewTransferFailureError(src, err)
}

// Mode returns ModeMove.
func (mover) Mode() Mode {
	return ModeMove
}
