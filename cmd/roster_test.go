package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"team-inventory/core/config"
	"team-inventory/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReadRoster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"players":[{"name":"Bob","assignedItems":[{"productName":"Helmet","quantity":2}]}]}`), 0o600))

	r, err := readRoster(path)
	require.NoError(t, err)
	require.Len(t, r.Players, 1)
	assert.Equal(t, "Helmet", r.Players[0].AssignedItems[0].ProductName)

	_, err = readRoster(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
	_, err = readRoster(bad)
	assert.ErrorContains(t, err, "failed to parse roster file")
}

func TestConfirmDestructiveAction(t *testing.T) {
	var out bytes.Buffer

	assert.True(t, confirmDestructiveAction(strings.NewReader("yes\n"), &out))
	assert.False(t, confirmDestructiveAction(strings.NewReader("no\n"), &out))
	assert.False(t, confirmDestructiveAction(strings.NewReader(""), &out))

	yesConfirm = true
	defer func() { yesConfirm = false }()
	assert.True(t, confirmDestructiveAction(strings.NewReader(""), &out))
}

func TestBootstrap(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{}
	cfg.Persistence.Backend = "database"
	cfg.Database.Driver = "sqlite"
	cfg.Database.Name = filepath.Join(t.TempDir(), "inventory.db")
	cfg.Database.TimeoutSeconds = 5

	tr, cleanup, err := bootstrap(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	helmet, err := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 4})
	require.NoError(t, err)
	cleanup()

	restored, cleanup, err := bootstrap(ctx, cfg, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()

	item, ok := restored.FindItem(helmet.ID)
	require.True(t, ok)
	assert.Equal(t, 4, item.Quantity)
	assert.Equal(t, "database", restored.Backend())
}

func TestBootstrap_InvalidBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Persistence.Backend = "etcd"

	_, _, err := bootstrap(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, "invalid persistence backend")
}
