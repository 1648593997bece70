package filesystem

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/jsonstore/pkg/types"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	sfs "github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
)

// synthFS implements types.FS on top of a synthfs filesystem. synthfs works
// with paths relative to its root, so it is wrapped to accept the absolute
// paths the resolver produces.
type synthFS struct {
	fs sfs.FullFileSystem
}

// NewSynthFS creates a synthfs-backed filesystem rooted at "/".
func NewSynthFS() types.FS {
	osfs := sfs.NewOSFileSystem("/")
	return NewSynthFSFrom(synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths())
}

// NewSynthFSFrom adapts an existing synthfs filesystem. The filesystem must
// accept absolute paths.
func NewSynthFSFrom(fsys sfs.FullFileSystem) types.FS {
	return &synthFS{fs: fsys}
}

func (s *synthFS) Stat(name string) (fs.FileInfo, error) {
	return s.fs.Stat(name)
}

func (s *synthFS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(s.fs, name)
}

func (s *synthFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return s.fs.WriteFile(name, data, perm)
}

func (s *synthFS) MkdirAll(path string, perm fs.FileMode) error {
	return s.fs.MkdirAll(path, perm)
}

func (s *synthFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return fs.ReadDir(s.fs, name)
}

func (s *synthFS) Remove(name string) error {
	return s.fs.Remove(name)
}

// RemoveAll walks the tree itself so it only depends on Stat, ReadDir and
// Remove.
func (s *synthFS) RemoveAll(path string) error {
	info, err := s.fs.Stat(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if info.IsDir() {
		entries, err := s.ReadDir(path)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := s.RemoveAll(filepath.Join(path, entry.Name())); err != nil {
				return err
			}
		}
	}
	return s.fs.Remove(path)
}
