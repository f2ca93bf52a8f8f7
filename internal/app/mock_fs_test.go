package app

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"time"
)

// mockFS is an in-memory tree keyed by directory path.
type mockFS struct {
	dirs    map[string][]mockEntry
	readErr map[string]error
	copyErr map[string]error
	copies  []string
	mkdirs  []string
}

type mockEntry struct {
	name  string
	isDir bool
	size  int64
}

func newMockFS() *mockFS {
	return &mockFS{
		dirs:    map[string][]mockEntry{},
		readErr: map[string]error{},
		copyErr: map[string]error{},
	}
}

func (m *mockFS) addDir(path string, entries ...mockEntry) {
	m.dirs[path] = entries
}

func (m *mockFS) ReadDir(path string) ([]fs.DirEntry, error) {
	if err := m.readErr[path]; err != nil {
		return nil, err
	}
	entries, ok := m.dirs[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	out := make([]fs.DirEntry, 0, len(entries))
	for _, entry := range entries {
		out = append(out, mockDirEntry{entry: entry})
	}
	return out, nil
}

func (m *mockFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.dirs[path]; ok {
		return mockFileInfo{name: filepath.Base(path), isDir: true}, nil
	}
	parent := filepath.Dir(path)
	for _, entry := range m.dirs[parent] {
		if entry.name == filepath.Base(path) {
			return mockFileInfo{name: entry.name, size: entry.size, isDir: entry.isDir}, nil
		}
	}
	return nil, fs.ErrNotExist
}

func (m *mockFS) MkdirAll(path string, perm fs.FileMode) error {
	m.mkdirs = append(m.mkdirs, path)
	return nil
}

func (m *mockFS) CopyFile(src, dst string) error {
	if err := m.copyErr[src]; err != nil {
		return err
	}
	m.copies = append(m.copies, fmt.Sprintf("%s -> %s", src, dst))
	return nil
}

type mockDirEntry struct {
	entry mockEntry
}

func (m mockDirEntry) Name() string      { return m.entry.name }
func (m mockDirEntry) IsDir() bool       { return m.entry.isDir }
func (m mockDirEntry) Type() fs.FileMode { return 0 }
func (m mockDirEntry) Info() (fs.FileInfo, error) {
	return mockFileInfo{name: m.entry.name, size: m.entry.size, isDir: m.entry.isDir}, nil
}

type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return m.size }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }
