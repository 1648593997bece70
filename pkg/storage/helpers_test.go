package storage_test

import (
	"io/fs"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/jsonstore/pkg/filesystem"
	"github.com/arthur-debert/jsonstore/pkg/paths"
	"github.com/arthur-debert/jsonstore/pkg/storage"
	"github.com/arthur-debert/jsonstore/pkg/types"
)

const memRoot = "/data"

// newMemoryStore returns a store on an in-memory filesystem rooted at memRoot.
func newMemoryStore(t *testing.T, opts ...storage.Option) (*storage.Store, types.FS) {
	t.Helper()
	fsys := filesystem.NewMemory()
	return newStoreOn(t, fsys, memRoot, opts...), fsys
}

func newStoreOn(t *testing.T, fsys types.FS, root string, opts ...storage.Option) *storage.Store {
	t.Helper()
	resolver, err := paths.New(root)
	require.NoError(t, err)
	return storage.New(fsys, resolver, opts...)
}

// countingFS records how many filesystem calls were made.
type countingFS struct {
	types.FS
	mu    sync.Mutex
	calls int
}

func (c *countingFS) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func (c *countingFS) hit() {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
}

func (c *countingFS) Stat(name string) (fs.FileInfo, error) {
	c.hit()
	return c.FS.Stat(name)
}

func (c *countingFS) ReadFile(name string) ([]byte, error) {
	c.hit()
	return c.FS.ReadFile(name)
}

func (c *countingFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	c.hit()
	return c.FS.WriteFile(name, data, perm)
}

func (c *countingFS) MkdirAll(path string, perm fs.FileMode) error {
	c.hit()
	return c.FS.MkdirAll(path, perm)
}

func (c *countingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	c.hit()
	return c.FS.ReadDir(name)
}

func (c *countingFS) Remove(name string) error {
	c.hit()
	return c.FS.Remove(name)
}

func (c *countingFS) RemoveAll(path string) error {
	c.hit()
	return c.FS.RemoveAll(path)
}

// faultyFS fails the named operations with the configured error.
type faultyFS struct {
	types.FS
	fail map[string]error
}

func (f *faultyFS) Stat(name string) (fs.FileInfo, error) {
	if err := f.fail["Stat"]; err != nil {
		return nil, err
	}
	return f.FS.Stat(name)
}

func (f *faultyFS) ReadFile(name string) ([]byte, error) {
	if err := f.fail["ReadFile"]; err != nil {
		return nil, err
	}
	return f.FS.ReadFile(name)
}

func (f *faultyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	if err := f.fail["WriteFile"]; err != nil {
		return err
	}
	return f.FS.WriteFile(name, data, perm)
}

func (f *faultyFS) MkdirAll(path string, perm fs.FileMode) error {
	if err := f.fail["MkdirAll"]; err != nil {
		return err
	}
	return f.FS.MkdirAll(path, perm)
}

func (f *faultyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if err := f.fail["ReadDir"]; err != nil {
		return nil, err
	}
	return f.FS.ReadDir(name)
}

func (f *faultyFS) RemoveAll(path string) error {
	if err := f.fail["RemoveAll"]; err != nil {
		return err
	}
	return f.FS.RemoveAll(path)
}

// noRenameFS hides the Rename method of the wrapped filesystem.
type noRenameFS struct {
	types.FS
}

func entryNames(t *testing.T, fsys types.FS, dir string) []string {
	t.Helper()
	entries, err := fsys.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
