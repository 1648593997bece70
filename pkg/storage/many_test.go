package storage_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/jsonstore/pkg/errors"
	"github.com/arthur-debert/jsonstore/pkg/filesystem"
	"github.com/arthur-debert/jsonstore/pkg/storage"
)

func TestGetMany(t *testing.T) {
	store, _ := newMemoryStore(t, storage.WithConcurrency(2))
	for i := 0; i < 10; i++ {
		require.NoError(t, store.Set(fmt.Sprintf("k%d", i), i))
	}

	keys := []string{"k0", "k3", "k9", "missing"}
	got, err := store.GetMany(context.Background(), keys)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"k0":      float64(0),
		"k3":      float64(3),
		"k9":      float64(9),
		"missing": map[string]any{},
	}, got)
}

func TestGetMany_Empty(t *testing.T) {
	store, _ := newMemoryStore(t)

	got, err := store.GetMany(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetMany_InvalidKeyBeforeIO(t *testing.T) {
	counter := &countingFS{FS: filesystem.NewMemory()}
	store := newStoreOn(t, counter, memRoot)

	_, err := store.GetMany(context.Background(), []string{"a", "b", " "})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidKey))
	assert.Zero(t, counter.count())
}

func TestGetMany_CorruptRecordFailsAll(t *testing.T) {
	store, fsys := newMemoryStore(t)
	require.NoError(t, store.Set("good", 1))
	require.NoError(t, fsys.WriteFile(filepath.Join(memRoot, "bad.json"), []byte("{"), 0644))

	got, err := store.GetMany(context.Background(), []string{"good", "bad"})
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCorruptRecord))
}

func TestGetMany_CancelledContext(t *testing.T) {
	store, _ := newMemoryStore(t)
	require.NoError(t, store.Set("k", 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.GetMany(ctx, []string{"k"})
	assert.ErrorIs(t, err, context.Canceled)
}
