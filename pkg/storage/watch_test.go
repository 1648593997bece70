// pkg/storage/watch_test.go
// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem and fsnotify
// PURPOSE: Test change notifications for records

package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/filesystem"
	"github.com/arthur-debert/jsonstore/pkg/storage"
)

func waitForEvent(t *testing.T, events <-chan storage.Event, key string, op storage.EventOp) storage.Event {
	t.Helper()
	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event channel closed early")
			if ev.Key == key && ev.Op == op {
				return ev
			}
		case <-timeout:
			t.Fatalf("timed out waiting for %s event on %q", op, key)
		}
	}
}

func TestWatch(t *testing.T) {
	root := filepath.Join(t.TempDir(), "records")
	store := newStoreOn(t, filesystem.NewOS(), root)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx)
	require.NoError(t, err)
	assert.DirExists(t, root)

	require.NoError(t, store.Set("a b", 1))
	ev := waitForEvent(t, events, "a b", storage.EventSet)
	assert.Equal(t, filepath.Join(root, "a%20b.json"), ev.Path)

	require.NoError(t, os.WriteFile(filepath.Join(root, "external.json"), []byte("2"), 0644))
	waitForEvent(t, events, "external", storage.EventSet)

	require.NoError(t, store.Remove("a b"))
	waitForEvent(t, events, "a b", storage.EventRemove)
}

func TestWatch_ClosesOnCancel(t *testing.T) {
	store := newStoreOn(t, filesystem.NewOS(), t.TempDir())

	ctx, cancel := context.WithCancel(context.Background())
	events, err := store.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event channel was not closed")
	}
}

func TestWatch_MissingRootWithoutCreate(t *testing.T) {
	root := filepath.Join(t.TempDir(), "missing")
	store := newStoreOn(t, filesystem.NewOS(), root, storage.WithCreateRoot(false))

	_, err := store.Watch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrWatch))
}
