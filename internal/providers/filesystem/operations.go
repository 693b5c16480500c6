package filesystem

import (
	"context"
	"fmt"
	"os"

	"github.com/GriffinCanCode/filemanager/internal/shared/utils"
	"go.uber.org/zap"
)

// OperationsOps handles stream operations between files (copy, move, hash)
type OperationsOps struct {
	*FilesystemOps
	Hasher *utils.Hasher
}

// Copy duplicates src into dest byte for byte. dest is truncated if it exists.
func (o *OperationsOps) Copy(ctx context.Context, src, dest string) error {
	in, err := openRegular(src, ErrInvalidSource)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := distinct(src, dest); err != nil {
		return err
	}

	n, err := o.writeStream(ctx, in, dest, nil)
	if err != nil {
		return err
	}

	o.log().Debug("Copied file", zap.String("source", src), zap.String("dest", dest), zap.Int64("bytes", n))
	return nil
}

// Move copies src to dest, then removes src once the copy is flushed.
// If the copy succeeded but src could not be removed, ErrSourceNotRemoved is returned.
func (o *OperationsOps) Move(ctx context.Context, src, dest string) error {
	if err := o.Copy(ctx, src, dest); err != nil {
		return err
	}
	if err := os.Remove(src); err != nil {
		o.log().Warn("Source kept after move", zap.String("source", src), zap.String("dest", dest), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSourceNotRemoved, err)
	}
	return nil
}

// Hash digests a regular file incrementally and returns the hex digest
func (o *OperationsOps) Hash(ctx context.Context, path string) (string, error) {
	in, err := openRegular(path, ErrInvalidPath)
	if err != nil {
		return "", err
	}
	defer in.Close()

	hasher := o.Hasher
	if hasher == nil {
		hasher = utils.DefaultHasher()
	}

	digest, err := hasher.HashReader(&contextReader{ctx: ctx, r: in}, o.buffer())
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	o.log().Debug("Hashed file", zap.String("path", path), zap.String("algorithm", string(hasher.Algorithm())))
	return digest, nil
}
