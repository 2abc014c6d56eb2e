package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/asdlgo/internal/fsutil"
)

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	for _, name := range []string{"b.asdl", "a.hcl", "notes.txt", "nested/c.asdl"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}

	files, err := fsutil.FindFilesByExtension(dir, ".asdl", ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.hcl"),
		filepath.Join(dir, "b.asdl"),
		filepath.Join(dir, "nested", "c.asdl"),
	}, files)
}

func TestFindFilesByExtension_NoMatches(t *testing.T) {
	t.Parallel()
	files, err := fsutil.FindFilesByExtension(t.TempDir(), ".asdl")
	require.NoError(t, err)
	require.Empty(t, files)
}
