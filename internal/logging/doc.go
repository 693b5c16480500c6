// Package logging provides structured logging using uber/zap.
//
// The file manager's standard output is the interactive session, so every
// logger built here writes to stderr (or a file) and never to stdout.
//
// Two modes:
//   - Production: JSON output for machine parsing
//   - Development: Colored console output for human readability
//
// Example Usage:
//
//	logger, err := logging.New(logging.DefaultConfig())
//	logger.Warn("Copy failed", zap.String("source", src), zap.Error(err))
package logging
