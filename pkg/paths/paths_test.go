// pkg/paths/paths_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None (pure path computation, environment via t.Setenv)
// PURPOSE: Test root directory ownership and key to record path resolution

package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/paths"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ExplicitRoot(t *testing.T) {
	root := t.TempDir()

	r, err := paths.New(root)
	require.NoError(t, err)
	assert.Equal(t, root, r.Root())
}

func TestNew_RelativeRootIsMadeAbsolute(t *testing.T) {
	r, err := paths.New("relative/data")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(r.Root()))
	assert.Equal(t, "data", filepath.Base(r.Root()))
}

func TestNew_DefaultRootFromEnvironment(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "records")
	t.Setenv(paths.EnvDataDir, dataDir)

	r, err := paths.New("")
	require.NoError(t, err)
	assert.Equal(t, dataDir, r.Root())
}

func TestNewWithProvider(t *testing.T) {
	t.Run("uses provider answer", func(t *testing.T) {
		root := t.TempDir()
		r, err := paths.NewWithProvider(paths.StaticProvider(root))
		require.NoError(t, err)
		assert.Equal(t, root, r.Root())
	})

	t.Run("nil provider", func(t *testing.T) {
		_, err := paths.NewWithProvider(nil)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
	})

	t.Run("failing provider", func(t *testing.T) {
		_, err := paths.NewWithProvider(paths.StaticProvider(""))
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
	})
}

func TestSetRoot(t *testing.T) {
	base := t.TempDir()
	other := t.TempDir()

	tests := []struct {
		name      string
		directory string
		replace   bool
		want      string
	}{
		{"replace overwrites root", other, true, other},
		{"append joins beneath root", "sub", false, filepath.Join(base, "sub")},
		{"append nested", filepath.Join("a", "b"), false, filepath.Join(base, "a", "b")},
		{"append absolute stays beneath root", "/abs", false, filepath.Join(base, "abs")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := paths.New(base)
			require.NoError(t, err)

			require.NoError(t, r.SetRoot(tt.directory, tt.replace))
			assert.Equal(t, tt.want, r.Root())
		})
	}
}

func TestSetRoot_ReplaceMakesRelativeAbsolute(t *testing.T) {
	r, err := paths.New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, r.SetRoot("rel/./store", true))
	want, err := filepath.Abs("rel/store")
	require.NoError(t, err)
	assert.Equal(t, want, r.Root())

	abs := filepath.Join(t.TempDir(), "exact")
	require.NoError(t, r.SetRoot(abs, true))
	assert.Equal(t, abs, r.Root())
}

func TestSetRoot_AppendPersistsAcrossCalls(t *testing.T) {
	base := t.TempDir()
	r, err := paths.New(base)
	require.NoError(t, err)

	require.NoError(t, r.SetRoot("one", false))
	require.NoError(t, r.SetRoot("two", false))
	assert.Equal(t, filepath.Join(base, "one", "two"), r.Root())
}

func TestSetRoot_InvalidArgument(t *testing.T) {
	base := t.TempDir()
	r, err := paths.New(base)
	require.NoError(t, err)

	for _, dir := range []string{"", "   "} {
		for _, replace := range []bool{true, false} {
			err := r.SetRoot(dir, replace)
			assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument), "dir=%q replace=%v", dir, replace)
		}
	}
	assert.Equal(t, base, r.Root(), "failed SetRoot must leave the root untouched")
}

func TestWithRoot_LeavesReceiverUntouched(t *testing.T) {
	base := t.TempDir()
	r, err := paths.New(base)
	require.NoError(t, err)

	child, err := r.WithRoot("nested", false)
	require.NoError(t, err)

	assert.Equal(t, base, r.Root())
	assert.Equal(t, filepath.Join(base, "nested"), child.Root())

	_, err = r.WithRoot("", true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidArgument))
}

func TestRecordPath(t *testing.T) {
	base := t.TempDir()
	r, err := paths.New(base)
	require.NoError(t, err)

	tests := []struct {
		key      string
		wantFile string
	}{
		{"foo", "foo.json"},
		{"foo.json", "foo.json"},
		{"foo.data", "foo.data.json"},
		{"a b", "a%20b.json"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := r.RecordPath(tt.key)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(base, tt.wantFile), got)
			assert.True(t, filepath.IsAbs(got))
		})
	}
}

func TestRecordPath_FollowsRootChanges(t *testing.T) {
	base := t.TempDir()
	r, err := paths.New(base)
	require.NoError(t, err)

	require.NoError(t, r.SetRoot("v2", false))
	got, err := r.RecordPath("settings")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "v2", "settings.json"), got)
}

func TestRecordPath_RejectsBadKeys(t *testing.T) {
	r, err := paths.New(t.TempDir())
	require.NoError(t, err)

	_, err = r.RecordPath("")
	assert.True(t, errors.IsErrorCode(err, errors.ErrMissingKey))

	_, err = r.RecordPath(" \t ")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey))
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, home, paths.ExpandHome("~"))
	assert.Equal(t, filepath.Join(home, "data"), paths.ExpandHome("~/data"))
	assert.Equal(t, "~other/data", paths.ExpandHome("~other/data"))
	assert.Equal(t, "/abs/path", paths.ExpandHome("/abs/path"))
	assert.Equal(t, "", paths.ExpandHome(""))
}
