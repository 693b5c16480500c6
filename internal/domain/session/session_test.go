package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, string) {
	t.Helper()
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, "Documents", "Work"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(home, "notes.txt"), []byte("n"), 0o644))

	s, err := New("Ada", home)
	require.NoError(t, err)
	return s, s.Home()
}

func TestNew(t *testing.T) {
	s, home := newTestSession(t)

	assert.Equal(t, "Ada", s.Username)
	assert.Equal(t, home, s.Dir())
	assert.True(t, strings.HasPrefix(s.ID.String(), "sess_"))

	anon, err := New("", home)
	require.NoError(t, err)
	assert.Equal(t, DefaultUsername, anon.Username)
}

func TestNewRejectsBadHome(t *testing.T) {
	_, err := New("Ada", filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))
	_, err = New("Ada", file)
	assert.Error(t, err)
}

func TestUpAtHomeIsNoop(t *testing.T) {
	s, home := newTestSession(t)

	assert.False(t, s.Up())
	assert.False(t, s.Up())
	assert.Equal(t, home, s.Dir())
}

func TestCdThenUp(t *testing.T) {
	s, home := newTestSession(t)

	require.NoError(t, s.Cd("Documents"))
	assert.Equal(t, filepath.Join(home, "Documents"), s.Dir())

	assert.True(t, s.Up())
	assert.Equal(t, home, s.Dir())

	require.NoError(t, s.Cd("Documents/Work"))
	assert.True(t, s.Up())
	assert.Equal(t, filepath.Join(home, "Documents"), s.Dir())
}

func TestCdInvalidLeavesDirUnchanged(t *testing.T) {
	s, home := newTestSession(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing", target: "Nope"},
		{name: "regular file", target: "notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.Cd(tt.target)
			assert.ErrorIs(t, err, ErrInvalidDirectory)
			assert.Equal(t, home, s.Dir())
		})
	}
}

func TestCdSymlinkToDirectoryIsRejected(t *testing.T) {
	s, home := newTestSession(t)

	link := filepath.Join(home, "docs-link")
	if err := os.Symlink(filepath.Join(home, "Documents"), link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	assert.ErrorIs(t, s.Cd("docs-link"), ErrInvalidDirectory)
}

func TestUpOutsideHomeWalksToRoot(t *testing.T) {
	s, home := newTestSession(t)

	require.NoError(t, s.Cd(filepath.Dir(home)))
	assert.True(t, s.Up())
	assert.Equal(t, filepath.Dir(filepath.Dir(home)), s.Dir())

	root := string(filepath.Separator)
	require.NoError(t, s.Cd(root))
	assert.False(t, s.Up())
	assert.Equal(t, root, s.Dir())
}

func TestResolveAndJoin(t *testing.T) {
	s, home := newTestSession(t)

	assert.Equal(t, filepath.Join(home, "a.txt"), s.Resolve("a.txt"))
	abs := filepath.Join(home, "Documents")
	assert.Equal(t, abs, s.Resolve(abs))
	assert.Equal(t, filepath.Join(home, "b.txt"), s.Join("b.txt"))
}
