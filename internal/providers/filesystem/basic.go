package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/filemanager/internal/shared/paths"
	"go.uber.org/zap"
)

// BasicOps handles single-file operations
type BasicOps struct {
	*FilesystemOps
}

// Cat streams a regular file to w chunk by chunk, as the chunks arrive.
// A newline is appended when non-empty content does not end with one; it goes out
// in the same Write as the final chunk so concurrent writers cannot split them.
func (b *BasicOps) Cat(ctx context.Context, path string, w io.Writer) error {
	f, err := openRegular(path, ErrInvalidPath)
	if err != nil {
		return err
	}
	defer f.Close()

	r := &contextReader{ctx: ctx, r: f}
	buf := b.buffer()
	// One chunk is held back until the next read shows whether it was the last
	pending := make([]byte, 0, len(buf)+1)
	var total int64

	flush := func() error {
		if len(pending) == 0 {
			return nil
		}
		if _, err := w.Write(pending); err != nil {
			return fmt.Errorf("%w: %w", ErrReadFailed, err)
		}
		pending = pending[:0]
		return nil
	}

	for {
		n, rerr := r.Read(buf)
		if n > 0 {
			if err := flush(); err != nil {
				return err
			}
			pending = append(pending, buf[:n]...)
			total += int64(n)
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			b.log().Debug("Read interrupted", zap.String("path", path), zap.Int64("bytes", total), zap.Error(rerr))
			if err := flush(); err != nil {
				return err
			}
			return fmt.Errorf("%w: %w", ErrReadFailed, rerr)
		}
	}

	if len(pending) > 0 && pending[len(pending)-1] != '\n' {
		pending = append(pending, '\n')
	}
	return flush()
}

// Create creates an empty file, truncating an existing one
func (b *BasicOps) Create(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	return nil
}

// Rename renames a regular file to newPath
func (b *BasicOps) Rename(oldPath, newPath string) error {
	if !paths.IsFile(oldPath) {
		return fmt.Errorf("%w: %s", ErrInvalidPath, oldPath)
	}
	if err := os.Rename(oldPath, newPath); err != nil {
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	return nil
}

// Delete removes a regular file
func (b *BasicOps) Delete(path string) error {
	if !paths.IsFile(path) {
		return fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	return nil
}
