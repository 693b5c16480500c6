// Package paths resolves command arguments against the session directory
// and classifies what they point at.
//
// Classification uses lstat: a symlink is never a directory or a regular
// file, even when its target is one.
//
// # Usage
//
//	target := paths.Resolve(session.Dir(), "notes/todo.txt")
//	if paths.IsFile(target) {
//	    // safe to stream
//	}
package paths
