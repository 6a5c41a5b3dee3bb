package walk

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, paths []string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		require.Nil(t, os.MkdirAll(filepath.Dir(full), 0755))
		require.Nil(t, os.WriteFile(full, []byte("package x;\n"), 0644))
	}
}

func relPaths(t *testing.T, root string, files []FileInfo) []string {
	t.Helper()
	var res []string
	for _, f := range files {
		rel, err := filepath.Rel(root, f.Path)
		require.Nil(t, err)
		res = append(res, filepath.ToSlash(rel))
	}
	return res
}

func TestWalkerDefaultIncludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"a.proto",
		"nested/b.proto",
		"nested/deep/c.proto",
		"readme.md",
	})

	files, err := NewWalker(nil, nil).Walk(root)
	require.Nil(t, err)

	assert.ElementsMatch(t, []string{"a.proto", "nested/b.proto", "nested/deep/c.proto"}, relPaths(t, root, files))
}

func TestWalkerExcludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"a.proto",
		"vendor/dep/x.proto",
		"keep/y.proto",
	})

	walker := NewWalker([]string{"**/*.proto"}, []string{"vendor/**"})
	files, err := walker.Walk(root)
	require.Nil(t, err)

	assert.ElementsMatch(t, []string{"a.proto", "keep/y.proto"}, relPaths(t, root, files))
}

func TestWalkerCustomIncludes(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{
		"a.proto",
		"b.pb",
	})

	walker := NewWalker([]string{"**/*.pb"}, nil)
	files, err := walker.Walk(root)
	require.Nil(t, err)

	assert.Equal(t, []string{"b.pb"}, relPaths(t, root, files))
}

func TestWalkerRecordsModTime(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, []string{"a.proto"})

	files, err := NewWalker(nil, nil).Walk(root)
	require.Nil(t, err)
	require.Len(t, files, 1)
	assert.Greater(t, files[0].ModTime, int64(0))
}
