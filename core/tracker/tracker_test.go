package tracker_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"team-inventory/core/events"
	eventmocks "team-inventory/core/events/mocks"
	"team-inventory/core/ledger"
	"team-inventory/core/roster"
	"team-inventory/core/snapshot"
	snapmocks "team-inventory/core/snapshot/mocks"
	"team-inventory/core/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// recorder collects published events.
type recorder struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recorder) Publish(_ context.Context, ev events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) Close() error { return nil }

func (r *recorder) types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]events.Type, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type)
	}
	return out
}

func newTracker(store snapshot.Store, pub events.Publisher) *tracker.Tracker {
	return tracker.New(tracker.Options{Snapshots: store, Publisher: pub, Logger: zap.NewNop()})
}

func TestTracker_CheckoutAndCheckIn(t *testing.T) {
	ctx := context.Background()
	pub := &recorder{}
	tr := newTracker(nil, pub)

	helmet, err := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 10})
	require.NoError(t, err)
	bob, err := tr.AddPlayer(ctx, "Bob", nil)
	require.NoError(t, err)

	a, err := tr.Checkout(ctx, bob.ID, helmet.ID, 4)
	require.NoError(t, err)

	item, _ := tr.FindItem(helmet.ID)
	assert.Equal(t, 6, item.Quantity)

	held, err := tr.PlayerAssignments(bob.ID)
	require.NoError(t, err)
	require.Len(t, held, 1)
	assert.Equal(t, "Helmet", held[0].Item.ProductName)

	holders, err := tr.ItemAssignments(helmet.ID)
	require.NoError(t, err)
	require.Len(t, holders, 1)
	assert.Equal(t, "Bob", holders[0].Player.Name)

	_, err = tr.CheckIn(ctx, a.ID)
	require.NoError(t, err)
	item, _ = tr.FindItem(helmet.ID)
	assert.Equal(t, 10, item.Quantity)

	_, err = tr.CheckIn(ctx, a.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)

	assert.Equal(t, []events.Type{events.TypeItemCheckedOut, events.TypeItemCheckedIn}, pub.types())
	assert.Equal(t, "Helmet", pub.events[0].ProductName)
	assert.Equal(t, helmet.ID, pub.events[0].InventoryID)
}

func TestTracker_CheckoutInsufficient(t *testing.T) {
	ctx := context.Background()
	pub := &recorder{}
	tr := newTracker(nil, pub)

	helmet, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 2})
	bob, _ := tr.AddPlayer(ctx, "Bob", nil)

	_, err := tr.Checkout(ctx, bob.ID, helmet.ID, 3)
	var stockErr *ledger.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 2, stockErr.Available)
	assert.Empty(t, pub.types())
	assert.Equal(t, 0, tr.Counts().Assignments)
}

func TestTracker_DeleteItemDiscardsAssignments(t *testing.T) {
	ctx := context.Background()
	pub := &recorder{}
	tr := newTracker(nil, pub)

	helmet, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 10})
	ball, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Ball", Quantity: 5})
	bob, _ := tr.AddPlayer(ctx, "Bob", nil)
	_, err := tr.Checkout(ctx, bob.ID, helmet.ID, 2)
	require.NoError(t, err)
	_, err = tr.Checkout(ctx, bob.ID, ball.ID, 1)
	require.NoError(t, err)

	removed, err := tr.DeleteItem(ctx, helmet.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	_, ok := tr.FindItem(helmet.ID)
	assert.False(t, ok)
	held, _ := tr.PlayerAssignments(bob.ID)
	require.Len(t, held, 1)
	assert.Equal(t, ball.ID, held[0].Item.ID)

	_, err = tr.DeleteItem(ctx, helmet.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.Contains(t, pub.types(), events.TypeItemRemoved)
}

func TestTracker_DeletePlayerChecksIn(t *testing.T) {
	ctx := context.Background()
	pub := &recorder{}
	tr := newTracker(nil, pub)

	helmet, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 10})
	bob, _ := tr.AddPlayer(ctx, "Bob", nil)
	_, _ = tr.Checkout(ctx, bob.ID, helmet.ID, 3)
	_, _ = tr.Checkout(ctx, bob.ID, helmet.ID, 2)

	n, err := tr.DeletePlayer(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	item, _ := tr.FindItem(helmet.ID)
	assert.Equal(t, 10, item.Quantity)
	assert.Empty(t, tr.ListPlayers())
	assert.Empty(t, tr.ListAssignments())

	_, err = tr.DeletePlayer(ctx, bob.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
	_, err = tr.PlayerAssignments(bob.ID)
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestTracker_CheckInAll(t *testing.T) {
	ctx := context.Background()
	tr := newTracker(nil, nil)

	helmet, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 10})
	bob, _ := tr.AddPlayer(ctx, "Bob", nil)
	_, _ = tr.Checkout(ctx, bob.ID, helmet.ID, 3)

	n, err := tr.CheckInAll(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = tr.CheckInAll(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	_, err = tr.CheckInAll(ctx, "missing")
	assert.ErrorIs(t, err, ledger.ErrNotFound)
}

func TestTracker_PersistAndReload(t *testing.T) {
	ctx := context.Background()
	store := snapshot.NewMemoryStore()
	tr := newTracker(store, nil)

	helmet, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 10, ReorderPoint: intPtr(8)})
	_, _ = tr.AddItem(ctx, ledger.NewItem{ProductName: "Ball", Quantity: 5})
	bob, _ := tr.AddPlayer(ctx, "Bob", intPtr(7))
	_, _ = tr.AddPlayer(ctx, "alice", nil)
	a, err := tr.Checkout(ctx, bob.ID, helmet.ID, 3)
	require.NoError(t, err)

	restored := newTracker(store, nil)
	counts := restored.Load(ctx)
	assert.Equal(t, tracker.Counts{Items: 2, LowStock: 1, Players: 2, Assignments: 1}, counts)

	assert.Equal(t, tr.ListItems(), restored.ListItems())
	assert.Equal(t, tr.ListPlayers(), restored.ListPlayers())
	assert.Equal(t, tr.ListAssignments(), restored.ListAssignments())

	_, err = restored.CheckIn(ctx, a.ID)
	require.NoError(t, err)
	item, _ := restored.FindItem(helmet.ID)
	assert.Equal(t, 10, item.Quantity)
}

func TestTracker_LoadFailuresStartEmpty(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := new(snapmocks.Store)
	store.On("Name").Return("mock")
	store.On("Load", mock.Anything, snapshot.KeyInventory).Return([]byte(`not json`), nil)
	store.On("Load", mock.Anything, snapshot.KeyPlayers).Return(nil, snapshot.ErrNotExist)
	store.On("Load", mock.Anything, snapshot.KeyAssignments).Return(nil, errors.New("backend down"))

	tr := tracker.New(tracker.Options{Snapshots: store, Logger: zap.New(core)})
	counts := tr.Load(context.Background())

	assert.Equal(t, tracker.Counts{}, counts)
	assert.Equal(t, 1, logs.FilterMessage("Corrupt snapshot ignored").Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed to load snapshot, starting empty").Len())
	assert.Equal(t, 1, logs.FilterMessage("No snapshot found, starting empty").Len())
}

func TestTracker_SaveAndPublishFailuresDoNotFail(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.ErrorLevel)

	store := new(snapmocks.Store)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("read-only"))
	pub := new(eventmocks.Publisher)
	pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("no brokers"))

	tr := tracker.New(tracker.Options{Snapshots: store, Publisher: pub, Logger: zap.New(core)})

	helmet, err := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 1})
	require.NoError(t, err)
	bob, err := tr.AddPlayer(ctx, "Bob", nil)
	require.NoError(t, err)
	_, err = tr.Checkout(ctx, bob.ID, helmet.ID, 1)
	require.NoError(t, err)

	assert.Equal(t, 9, logs.FilterMessage("Failed to save snapshot").Len())
	assert.Equal(t, 1, logs.FilterMessage("Failed to publish event").Len())
	pub.AssertNumberOfCalls(t, "Publish", 1)
}

func TestTracker_AddPlayerExistingSkipsPersist(t *testing.T) {
	ctx := context.Background()
	store := new(snapmocks.Store)
	store.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	tr := newTracker(store, nil)
	first, err := tr.AddPlayer(ctx, "Alice", nil)
	require.NoError(t, err)
	second, err := tr.AddPlayer(ctx, "ALICE", nil)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	store.AssertNumberOfCalls(t, "Save", 3)

	_, err = tr.AddPlayer(ctx, "   ", nil)
	assert.ErrorIs(t, err, ledger.ErrValidation)
}

func TestTracker_ImportRoster(t *testing.T) {
	ctx := context.Background()
	pub := &recorder{}
	tr := newTracker(nil, pub)

	helmet, _ := tr.AddItem(ctx, ledger.NewItem{ProductName: "Helmet", Quantity: 10})
	input := roster.Roster{Players: []roster.Player{
		{Name: "Bob", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 15}}},
		{Name: "Alice", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 3}}},
	}}

	preview := tr.PreviewRoster(input)
	assert.True(t, preview.DryRun)
	assert.Equal(t, 0, tr.Counts().Players)

	report := tr.ImportRoster(ctx, input)
	assert.Equal(t, preview.Summary, report.Summary)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, `Not enough stock for "Helmet" for player Bob. Available: 10, Needed: 15.`, report.Issues[0].Message)

	item, _ := tr.FindItem(helmet.ID)
	assert.Equal(t, 7, item.Quantity)
	assert.Equal(t, 2, tr.Counts().Players)
	assert.Equal(t, []events.Type{events.TypeRosterImported}, pub.types())
	assert.Equal(t, 1, pub.events[0].Issues)
}

func TestTracker_Backend(t *testing.T) {
	assert.Equal(t, "memory", newTracker(nil, nil).Backend())
}

func intPtr(v int) *int { return &v }
