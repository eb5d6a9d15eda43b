package snapshot_test

import (
	"context"
	"testing"

	"team-inventory/core/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	assert.Equal(t, "memory", store.Name())

	_, err := store.Load(ctx, snapshot.KeyInventory)
	assert.ErrorIs(t, err, snapshot.ErrNotExist)

	payload := []byte(`[{"id":"1"}]`)
	require.NoError(t, store.Save(ctx, snapshot.KeyInventory, payload))
	payload[0] = 'x'

	data, err := store.Load(ctx, snapshot.KeyInventory)
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(data))

	data[0] = 'y'
	again, _ := store.Load(ctx, snapshot.KeyInventory)
	assert.Equal(t, `[{"id":"1"}]`, string(again))
}

func TestConfig_IsValidBackend(t *testing.T) {
	tests := []struct {
		backend string
		want    bool
	}{
		{snapshot.BackendMemory, true},
		{snapshot.BackendDatabase, true},
		{snapshot.BackendStorage, true},
		{snapshot.BackendRedis, true},
		{"etcd", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			assert.Equal(t, tt.want, snapshot.Config{Backend: tt.backend}.IsValidBackend())
		})
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		store, closeFn, err := snapshot.Open(ctx, snapshot.Config{Backend: "memory"}, snapshot.Sources{})
		require.NoError(t, err)
		assert.Equal(t, "memory", store.Name())
		assert.NoError(t, closeFn())
	})

	t.Run("SQLite", func(t *testing.T) {
		src := snapshot.Sources{}
		src.Database.Driver = "sqlite"
		src.Database.Name = "file::memory:"
		src.Database.TimeoutSeconds = 5

		store, closeFn, err := snapshot.Open(ctx, snapshot.Config{Backend: "database"}, src)
		require.NoError(t, err)
		defer closeFn()
		assert.Equal(t, "database", store.Name())
	})

	t.Run("Unsupported", func(t *testing.T) {
		_, closeFn, err := snapshot.Open(ctx, snapshot.Config{Backend: "etcd"}, snapshot.Sources{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported snapshot backend")
		assert.NotNil(t, closeFn)
	})
}
