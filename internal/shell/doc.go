// Package shell implements the interactive read-eval-print loop.
//
// Lines are tokenized, parsed into tagged command variants and dispatched.
// Navigation and single-file commands run inline; stream pipelines (cat, cp,
// mv, hash, compress, decompress) run on a TaskRunner and report through a
// shared Printer.
package shell
