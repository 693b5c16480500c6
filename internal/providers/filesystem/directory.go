package filesystem

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/GriffinCanCode/filemanager/internal/shared/paths"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DirectoryOps handles directory listing
type DirectoryOps struct {
	*FilesystemOps

	collator *collate.Collator
	mu       sync.Mutex // collator keeps internal buffers
}

// NewDirectoryOps creates directory operations that order names for locale
func NewDirectoryOps(ops *FilesystemOps, locale string) (*DirectoryOps, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &DirectoryOps{
		FilesystemOps: ops,
		collator:      collate.New(tag),
	}, nil
}

// List lists directory contents, directories first, then by collation order
func (d *DirectoryOps) List(ctx context.Context, dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOperationFailed, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrOperationFailed, ctx.Err())
		default:
		}

		// ReadDir reports the lstat type, so symlinks stay symlinks
		entries = append(entries, Entry{Name: de.Name(), Kind: paths.KindOf(de.Type())})
	}

	d.sort(entries)
	return entries, nil
}

func (d *DirectoryOps) sort(entries []Entry) {
	d.mu.Lock()
	defer d.mu.Unlock()

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.IsDir() != b.IsDir() {
			return a.IsDir()
		}
		if c := d.collator.CompareString(a.Name, b.Name); c != 0 {
			return c < 0
		}
		return a.Name < b.Name
	})
}
