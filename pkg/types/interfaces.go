package types

import (
	"io/fs"
)

// FS is the filesystem interface the record store is written against.
// Not-found conditions must satisfy errors.Is(err, fs.ErrNotExist).
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Removal. RemoveAll must succeed when path does not exist.
	Remove(name string) error
	RemoveAll(path string) error
}

// Renamer is implemented by filesystems that can rename in place.
// The store only writes atomically when the FS supports it.
type Renamer interface {
	Rename(oldpath, newpath string) error
}

// RootProvider supplies the default absolute directory records live in.
type RootProvider interface {
	DefaultRoot() (string, error)
}
