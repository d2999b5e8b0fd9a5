package transfer

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/marmos91/dirsplit/internal/bufpool"
	"github.com/marmos91/dirsplit/pkg/split/errors"
)

// copier duplicates file contents and permission bits, leaving the source
// entry in place.
type copier struct{}

// Ensure copier implements Transferer.
var _ Transferer = copier{}

// Transfer copies the file at src to dst, overwriting any existing dst.
func (copier) Transfer(ctx context.Context, src, dst string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := copyFile(src, dst); err != nil {
		return errors.NewTransferFailureError(src, err)
	}
	return nil
}

// Mode returns ModeCopy.
func (copier) Mode() Mode {
	return ModeCopy
}

// copyFile duplicates src at dst, truncating an existing dst and carrying
// over the source's permission bits. Shared with mover for its cross-device
// fallback.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}

	buf := bufpool.Get()
	defer bufpool.Put(buf)

	if _, err := io.CopyBuffer(out, in, buf); err != nil {
		out.Close()
		return fmt.Errorf("failed to copy contents: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close destination: %w", err)
	}

	// The destination may have pre-existed with different permissions;
	// OpenFile only applies the mode at creation.
	if err := os.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	return nil
}
