// Package session holds the state of one file manager run: who is using it,
// where it started, and which directory commands currently resolve against.
//
// The starting directory is a floor for `up` only. `cd` may leave it, and
// `up` from outside keeps walking toward the filesystem root.
package session
