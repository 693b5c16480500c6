package filesystem

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/gabriel-vasile/mimetype"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// Codec is a lossless stream compression format
type Codec interface {
	Name() string
	NewWriter(w io.Writer) (io.WriteCloser, error)
	NewReader(r io.Reader) (io.ReadCloser, error)
}

type brotliCodec struct{}

func (brotliCodec) Name() string { return "brotli" }

func (brotliCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriterLevel(w, brotli.DefaultCompression), nil
}

func (brotliCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(brotli.NewReader(r)), nil
}

type gzipCodec struct{}

func (gzipCodec) Name() string { return "gzip" }

func (gzipCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

func (gzipCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }

func (zstdCodec) NewWriter(w io.Writer) (io.WriteCloser, error) {
	return zstd.NewWriter(w)
}

func (zstdCodec) NewReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

var codecs = map[string]Codec{
	"brotli": brotliCodec{},
	"gzip":   gzipCodec{},
	"zstd":   zstdCodec{},
}

// CodecByName returns the codec registered under name
func CodecByName(name string) (Codec, error) {
	c, ok := codecs[name]
	if !ok {
		return nil, fmt.Errorf("unsupported compression: %s", name)
	}
	return c, nil
}

// sniffLimit covers the magic numbers mimetype needs for gzip and zstd
const sniffLimit = 512

// detectCodec recognizes self-describing frames. Brotli has no magic number.
func detectCodec(head []byte) (Codec, bool) {
	mime := mimetype.Detect(head)
	switch {
	case mime.Is("application/gzip"):
		return codecs["gzip"], true
	case mime.Is("application/zstd"):
		return codecs["zstd"], true
	default:
		return nil, false
	}
}

// ArchivesOps handles compression and decompression of single files
type ArchivesOps struct {
	*FilesystemOps
	Codec Codec
}

func (a *ArchivesOps) codec() Codec {
	if a.Codec == nil {
		return brotliCodec{}
	}
	return a.Codec
}

// Compress streams src through the configured codec into dest
func (a *ArchivesOps) Compress(ctx context.Context, src, dest string) error {
	in, err := openRegular(src, ErrInvalidSource)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := distinct(src, dest); err != nil {
		return err
	}

	codec := a.codec()
	n, err := a.writeStream(ctx, in, dest, codec.NewWriter)
	if err != nil {
		return err
	}

	a.log().Debug("Compressed file", zap.String("source", src), zap.String("dest", dest),
		zap.String("codec", codec.Name()), zap.Int64("bytes_in", n))
	return nil
}

// Decompress streams src through a decoder into dest.
// gzip and zstd input is recognized by content; anything else uses the configured codec.
func (a *ArchivesOps) Decompress(ctx context.Context, src, dest string) error {
	in, err := openRegular(src, ErrInvalidSource)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := distinct(src, dest); err != nil {
		return err
	}

	br := bufio.NewReaderSize(&contextReader{ctx: ctx, r: in}, sniffLimit)
	head, _ := br.Peek(sniffLimit)

	codec, ok := detectCodec(head)
	if !ok {
		codec = a.codec()
	}

	dec, err := codec.NewReader(br)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}
	defer dec.Close()

	n, err := a.writeStream(ctx, dec, dest, nil)
	if err != nil {
		return err
	}

	a.log().Debug("Decompressed file", zap.String("source", src), zap.String("dest", dest),
		zap.String("codec", codec.Name()), zap.Int64("bytes_out", n))
	return nil
}
