package paths

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{name: "relative", base: "/home/user", path: "docs", want: "/home/user/docs"},
		{name: "nested relative", base: "/home/user", path: "a/b/../c", want: "/home/user/a/c"},
		{name: "dot-dot", base: "/home/user/docs", path: "..", want: "/home/user"},
		{name: "absolute passes through", base: "/home/user", path: "/etc/hosts", want: "/etc/hosts"},
		{name: "absolute is cleaned", base: "/home/user", path: "/etc//x/../hosts", want: "/etc/hosts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, filepath.FromSlash(tt.want), Resolve(filepath.FromSlash(tt.base), filepath.FromSlash(tt.path)))
		})
	}
}

func TestParentOfRootIsRoot(t *testing.T) {
	root := string(filepath.Separator)
	assert.Equal(t, root, Parent(root))
}

func TestClassify(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	kind, info := Classify(dir)
	assert.Equal(t, Directory, kind)
	assert.NotNil(t, info)

	kind, _ = Classify(file)
	assert.Equal(t, Regular, kind)

	kind, info = Classify(filepath.Join(dir, "nope"))
	assert.Equal(t, Missing, kind)
	assert.Nil(t, info)

	link := filepath.Join(dir, "link")
	if err := os.Symlink(dir, link); err == nil {
		kind, _ = Classify(link)
		assert.Equal(t, Other, kind)
		assert.False(t, IsDir(link))
	}

	assert.True(t, IsDir(dir))
	assert.True(t, IsFile(file))
	assert.False(t, IsFile(dir))
}

func TestSame(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.True(t, Same(file, filepath.Join(dir, ".", "a.txt")))
	assert.False(t, Same(file, filepath.Join(dir, "b.txt")))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "directory", Directory.String())
	assert.Equal(t, "file", Regular.String())
	assert.Equal(t, "missing", Missing.String())
	assert.Equal(t, "other", Other.String())
}
