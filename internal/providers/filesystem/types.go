package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/GriffinCanCode/filemanager/internal/logging"
	"github.com/GriffinCanCode/filemanager/internal/shared/paths"
	"go.uber.org/zap"
)

var (
	ErrInvalidPath     = errors.New("invalid file path")
	ErrInvalidSource   = errors.New("invalid source file")
	ErrOperationFailed = errors.New("operation failed")
	ErrReadFailed      = errors.New("error reading file")

	// ErrSourceNotRemoved reports a move whose copy succeeded but whose source survived
	ErrSourceNotRemoved = fmt.Errorf("%w: source not removed after copy", ErrOperationFailed)
)

// DefaultBufferSize is the chunk size for streamed reads
const DefaultBufferSize = 64 * 1024

// Entry represents one directory listing row
type Entry struct {
	Name string
	Kind paths.Kind
}

// IsDir reports whether the entry is a directory (symlinks are not)
func (e Entry) IsDir() bool {
	return e.Kind == paths.Directory
}

// Label returns "directory" or "file"
func (e Entry) Label() string {
	if e.IsDir() {
		return "directory"
	}
	return "file"
}

// FilesystemOps provides common filesystem operation helpers
type FilesystemOps struct {
	Logger     *logging.Logger
	BufferSize int
}

func (ops *FilesystemOps) buffer() []byte {
	size := ops.BufferSize
	if size <= 0 {
		size = DefaultBufferSize
	}
	return make([]byte, size)
}

func (ops *FilesystemOps) log() *logging.Logger {
	if ops.Logger == nil {
		return logging.NewNop()
	}
	return ops.Logger
}

// openRegular opens path for reading if it is a regular file.
// notFile is returned (wrapped) when it is missing or not a regular file.
func openRegular(path string, notFile error) (*os.File, error) {
	if !paths.IsFile(path) {
		return nil, fmt.Errorf("%w: %s", notFile, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	return f, nil
}

// distinct rejects a destination that is the source itself.
// Creating dest would truncate the source before it is read.
func distinct(src, dest string) error {
	if paths.Same(src, dest) {
		return fmt.Errorf("%w: %s and %s are the same file", ErrOperationFailed, src, dest)
	}
	return nil
}

// writeStream drives src into a freshly created dest, optionally through an encoder.
// It reports success only once the encoder and the file are both closed.
func (ops *FilesystemOps) writeStream(ctx context.Context, src io.Reader, dest string, encode func(io.Writer) (io.WriteCloser, error)) (int64, error) {
	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	var w io.Writer = out
	var enc io.WriteCloser
	if encode != nil {
		enc, err = encode(out)
		if err != nil {
			out.Close()
			return 0, fmt.Errorf("%w: %w", ErrOperationFailed, err)
		}
		w = enc
	}

	n, err := io.CopyBuffer(w, &contextReader{ctx: ctx, r: src}, ops.buffer())
	if enc != nil {
		if cerr := enc.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		ops.log().Debug("Stream aborted", zap.String("dest", dest), zap.Int64("bytes", n), zap.Error(err))
		return n, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	return n, nil
}

// contextReader stops a stream once ctx is done
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
