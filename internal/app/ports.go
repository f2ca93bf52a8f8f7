package app

import (
	"io/fs"
)

type FileSystem interface {
	ReadDir(path string) ([]fs.DirEntry, error)
	Stat(path string) (fs.FileInfo, error)
	MkdirAll(path string, perm fs.FileMode) error
	CopyFile(src, dst string) error
}

// DeviceResolver finds the root of the first available removable storage
// device. It is queried once, before any file operation.
type DeviceResolver interface {
	RemovableRoot() (string, error)
}

// ProgressFunc is called after each attempted file copy
type ProgressFunc func(done, total int, file string)
