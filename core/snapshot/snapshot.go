package snapshot

import (
	"context"
	"errors"
)

// Keys under which the three collections are persisted.
const (
	KeyInventory   = "team-inventory-assistant-data"
	KeyPlayers     = "team-inventory-players-data"
	KeyAssignments = "team-inventory-assignments-data"
)

// Keys lists every collection key in load order.
var Keys = []string{KeyInventory, KeyPlayers, KeyAssignments}

// ErrNotExist is returned by Load when nothing was saved under the key yet.
var ErrNotExist = errors.New("snapshot does not exist")

// Store persists serialized collections.
type Store interface {
	// Name identifies the backend in logs and health output.
	Name() string
	// Load returns the bytes saved under key, or ErrNotExist.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save replaces the bytes under key.
	Save(ctx context.Context, key string, data []byte) error
}
