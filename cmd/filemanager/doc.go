// Package main is the entry point for the interactive file manager.
//
// The program greets the user, then reads one command per line and
// reports the current directory after each one.
//
// Commands:
//
//	up | cd <dir> | ls
//	cat <file> | add <name> | rn <file> <name> | rm <file>
//	cp <src> <dest> | mv <src> <dest> | hash <file>
//	compress <src> <dest> | decompress <src> <dest>
//	os --EOL | --cpus | --homedir | --username | --architecture
//	.exit
//
// Configuration:
//   - Environment variables prefixed FM_ (see internal/config)
//   - --username flag (overrides FM_USERNAME)
//
// Usage:
//
//	filemanager --username=Alice
//
// Signals:
//   - SIGINT, SIGTERM: cancel running tasks, print the farewell, exit 0
package main
