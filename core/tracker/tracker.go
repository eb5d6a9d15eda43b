package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"team-inventory/core/events"
	"team-inventory/core/ledger"
	"team-inventory/core/roster"
	"team-inventory/core/snapshot"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

// Options configures a Tracker. Zero values fall back to English ordering, an
// in-memory snapshot store, no event publishing and a no-op logger.
type Options struct {
	Locale    language.Tag
	Snapshots snapshot.Store
	Publisher events.Publisher
	Logger    *zap.Logger
}

// Counts summarizes the tracker contents.
type Counts struct {
	Items       int `json:"items"`
	LowStock    int `json:"lowStock"`
	Players     int `json:"players"`
	Assignments int `json:"assignments"`
}

// Tracker owns the stores of one team.
type Tracker struct {
	mu         sync.Mutex
	items      *ledger.InventoryStore
	players    *ledger.PlayerStore
	book       *ledger.Ledger
	reconciler *roster.Reconciler
	snapshots  snapshot.Store
	publisher  events.Publisher
	logger     *zap.Logger
}

// New creates an empty Tracker. Call Load to restore persisted state.
func New(opts Options) *Tracker {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Locale == language.Und {
		opts.Locale = language.English
	}
	if opts.Snapshots == nil {
		opts.Snapshots = snapshot.NewMemoryStore()
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NopPublisher{}
	}

	items := ledger.NewInventoryStore()
	players := ledger.NewPlayerStore(opts.Locale)
	book := ledger.New(items, players, opts.Logger.Named("ledger"))

	return &Tracker{
		items:      items,
		players:    players,
		book:       book,
		reconciler: roster.NewReconciler(items, players, book, opts.Logger.Named("roster")),
		snapshots:  opts.Snapshots,
		publisher:  opts.Publisher,
		logger:     opts.Logger,
	}
}

// Backend names the snapshot store in use.
func (t *Tracker) Backend() string {
	return t.snapshots.Name()
}

// Load restores the three collections from the snapshot store. A missing or
// unreadable collection starts empty.
func (t *Tracker) Load(ctx context.Context) Counts {
	blobs := make([][]byte, len(snapshot.Keys))

	g, gctx := errgroup.WithContext(ctx)
	for i, key := range snapshot.Keys {
		g.Go(func() error {
			data, err := t.snapshots.Load(gctx, key)
			switch {
			case errors.Is(err, snapshot.ErrNotExist):
				t.logger.Info("No snapshot found, starting empty", zap.String("key", key))
			case err != nil:
				t.logger.Warn("Failed to load snapshot, starting empty", zap.String("key", key), zap.Error(err))
			default:
				blobs[i] = data
			}
			return nil
		})
	}
	_ = g.Wait()

	var (
		items       []ledger.Item
		players     []ledger.Player
		assignments []ledger.Assignment
	)
	t.decode(snapshot.KeyInventory, blobs[0], &items)
	t.decode(snapshot.KeyPlayers, blobs[1], &players)
	t.decode(snapshot.KeyAssignments, blobs[2], &assignments)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.items.Restore(items)
	t.players.Restore(players)
	t.book.Restore(assignments)

	counts := t.counts()
	t.logger.Info("Snapshots loaded",
		zap.String("backend", t.snapshots.Name()),
		zap.Int("items", counts.Items),
		zap.Int("players", counts.Players),
		zap.Int("assignments", counts.Assignments),
	)
	return counts
}

func (t *Tracker) decode(key string, data []byte, into any) {
	if len(data) == 0 {
		return
	}
	if err := json.Unmarshal(data, into); err != nil {
		t.logger.Warn("Corrupt snapshot ignored", zap.String("key", key), zap.Error(err))
	}
}

// persist writes all collections. Requires t.mu to be held.
func (t *Tracker) persist(ctx context.Context) {
	payloads := map[string]any{
		snapshot.KeyInventory:   t.items.List(),
		snapshot.KeyPlayers:     t.players.List(),
		snapshot.KeyAssignments: t.book.List(),
	}

	var g errgroup.Group
	for key, value := range payloads {
		g.Go(func() error {
			data, err := json.Marshal(value)
			if err != nil {
				t.logger.Error("Failed to encode snapshot", zap.String("key", key), zap.Error(err))
				return nil
			}
			if err := t.snapshots.Save(ctx, key, data); err != nil {
				t.logger.Error("Failed to save snapshot", zap.String("key", key), zap.Error(err))
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (t *Tracker) publish(ctx context.Context, evs ...events.Event) {
	for _, ev := range evs {
		if err := t.publisher.Publish(ctx, ev); err != nil {
			t.logger.Error("Failed to publish event",
				zap.String("event_type", string(ev.Type)),
				zap.String("inventory_id", ev.InventoryID),
				zap.Error(err),
			)
		}
	}
}

// Counts reports the current collection sizes.
func (t *Tracker) Counts() Counts {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counts()
}

func (t *Tracker) counts() Counts {
	return Counts{
		Items:       t.items.Len(),
		LowStock:    len(t.items.LowStock()),
		Players:     t.players.Len(),
		Assignments: t.book.Len(),
	}
}

// Flush writes the current state to the snapshot store.
func (t *Tracker) Flush(ctx context.Context) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.persist(ctx)
}

// Snapshots returns the snapshot store in use.
func (t *Tracker) Snapshots() snapshot.Store {
	return t.snapshots
}
