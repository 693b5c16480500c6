package paths

import (
	"os"
	"path/filepath"
)

// Kind classifies a filesystem entry without following symlinks
type Kind int

const (
	Missing Kind = iota
	Directory
	Regular
	Other // symlinks, devices, sockets, pipes
)

func (k Kind) String() string {
	switch k {
	case Directory:
		return "directory"
	case Regular:
		return "file"
	case Other:
		return "other"
	default:
		return "missing"
	}
}

// Resolve resolves path against base. Absolute paths pass through cleaned.
func Resolve(base, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(base, path)
}

// Join places name directly under dir, without absolute pass-through
func Join(dir, name string) string {
	return filepath.Join(dir, name)
}

// Parent returns the parent of dir; the root is its own parent
func Parent(dir string) string {
	return filepath.Dir(dir)
}

// Classify lstats path and reports its kind
func Classify(path string) (Kind, os.FileInfo) {
	info, err := os.Lstat(path)
	if err != nil {
		return Missing, nil
	}
	return KindOf(info.Mode()), info
}

// KindOf maps a file mode to a Kind
func KindOf(mode os.FileMode) Kind {
	switch {
	case mode.IsDir():
		return Directory
	case mode.IsRegular():
		return Regular
	default:
		return Other
	}
}

// IsDir reports whether path is a directory (symlinks are not followed)
func IsDir(path string) bool {
	kind, _ := Classify(path)
	return kind == Directory
}

// IsFile reports whether path is a regular file (symlinks are not followed)
func IsFile(path string) bool {
	kind, _ := Classify(path)
	return kind == Regular
}

// Same reports whether a and b name the same existing file
func Same(a, b string) bool {
	ai, err := os.Stat(a)
	if err != nil {
		return false
	}
	bi, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(ai, bi)
}
