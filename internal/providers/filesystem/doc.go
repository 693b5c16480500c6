// Package filesystem provides the file operations behind the file manager's commands.
//
// This package is organized into specialized modules:
//   - directory: listing, directories first then locale collation
//   - basic: single-file operations (cat, create, rename, delete)
//   - operations: stream operations between files (copy, move, hash)
//   - archives: single-file compression (brotli, gzip, zstd)
//
// All operations:
//   - Take absolute paths; resolution against the session happens in the caller
//   - Treat symlinks as neither files nor directories
//   - Stream through a fixed-size buffer and stop when the context is done
//   - Return errors wrapping one of the package's sentinel errors
//
// Example Usage:
//
//	provider, err := filesystem.NewProvider(filesystem.Options{Compression: "zstd"}, logger)
//	err = provider.Archives.Compress(ctx, "/home/ada/log.txt", "/home/ada/log.txt.zst")
package filesystem
