package fs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFilePreservesContentAndTimes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "out", "nested", "dst.txt")

	require.NoError(t, os.WriteFile(src, []byte("hello"), 0o644))
	modTime := time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(src, modTime, modTime))

	osfs := OSFS{}
	require.NoError(t, osfs.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(modTime), "expected %v, got %v", modTime, info.ModTime())
}

func TestCopyFileIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	require.NoError(t, os.WriteFile(src, []byte("first"), 0o644))

	osfs := OSFS{}
	require.NoError(t, osfs.CopyFile(src, dst))
	require.NoError(t, osfs.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "first", string(content))
}

func TestCopyFileOverwritesLargerDestination(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")

	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old longer content"), 0o644))

	require.NoError(t, OSFS{}.CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := OSFS{}.CopyFile(filepath.Join(dir, "absent"), filepath.Join(dir, "dst"))
	assert.Error(t, err)
}

func TestMkdirAllIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")

	osfs := OSFS{}
	require.NoError(t, osfs.MkdirAll(nested, 0o755))
	require.NoError(t, osfs.MkdirAll(nested, 0o755))

	info, err := osfs.Stat(nested)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), nil, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	entries, err := OSFS{}.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name())
	assert.True(t, entries[1].IsDir())
}
