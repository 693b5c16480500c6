// Package system answers the file manager's `os` command: line endings,
// processors, home directory, login name and CPU architecture.
//
// Processor model and nominal frequency come from cpuid; the count is the
// number of logical CPUs usable by the process.
package system
