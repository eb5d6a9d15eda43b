package roster_test

import (
	"testing"

	"team-inventory/core/ledger"
	"team-inventory/core/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type env struct {
	items   *ledger.InventoryStore
	players *ledger.PlayerStore
	book    *ledger.Ledger
	rec     *roster.Reconciler
}

func newEnv() *env {
	items := ledger.NewInventoryStore()
	players := ledger.NewPlayerStore(language.English)
	book := ledger.New(items, players, zap.NewNop())
	return &env{
		items:   items,
		players: players,
		book:    book,
		rec:     roster.NewReconciler(items, players, book, zap.NewNop()),
	}
}

func (e *env) item(t *testing.T, name string, qty int) ledger.Item {
	t.Helper()
	item, err := e.items.Add(ledger.NewItem{ProductName: name, Quantity: qty})
	require.NoError(t, err)
	return item
}

func (e *env) onHand(t *testing.T, id string) int {
	t.Helper()
	item, ok := e.items.Find(id)
	require.True(t, ok)
	return item.Quantity
}

func bobWants(product string, qty int) roster.Roster {
	return roster.Roster{Players: []roster.Player{
		{Name: "Bob", AssignedItems: []roster.Line{{ProductName: product, Quantity: qty}}},
	}}
}

func TestReconcile_RoundTrip(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)

	report := e.rec.Reconcile(bobWants("Helmet", 3))

	assert.False(t, report.HasIssues())
	assert.Equal(t, []string{"Bob"}, report.Players)
	require.Len(t, report.Checkouts, 1)
	assert.Equal(t, 3, report.Checkouts[0].Quantity)

	players := e.players.List()
	require.Len(t, players, 1)
	assert.Equal(t, "Bob", players[0].Name)

	assignments := e.book.List()
	require.Len(t, assignments, 1)
	assert.Equal(t, 3, assignments[0].Quantity)
	assert.Equal(t, players[0].ID, assignments[0].PlayerID)
	assert.Equal(t, 7, e.onHand(t, helmet.ID))
}

func TestReconcile_OverDemand(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)

	report := e.rec.Reconcile(bobWants("Helmet", 15))

	require.Len(t, report.Issues, 1)
	issue := report.Issues[0]
	assert.Equal(t, roster.IssueInsufficientStock, issue.Kind)
	assert.Equal(t, 10, issue.Available)
	assert.Equal(t, 15, issue.Requested)
	assert.Equal(t, `Not enough stock for "Helmet" for player Bob. Available: 10, Needed: 15.`, issue.Message)

	assert.Equal(t, 0, e.book.Len())
	assert.Equal(t, 10, e.onHand(t, helmet.ID))
	assert.Equal(t, 1, e.players.Len())
}

func TestReconcile_ItemNotFound(t *testing.T) {
	e := newEnv()
	e.item(t, "Helmet", 10)

	report := e.rec.Reconcile(bobWants("Mouthguard", 1))

	require.Len(t, report.Issues, 1)
	assert.Equal(t, roster.IssueItemNotFound, report.Issues[0].Kind)
	assert.Equal(t, `Item "Mouthguard" for player Bob not found in inventory.`, report.Issues[0].Message)
}

func TestReconcile_NoRollback(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)
	pads := e.item(t, "Shoulder Pads", 4)

	report := e.rec.Reconcile(roster.Roster{Players: []roster.Player{
		{Name: "Bob", AssignedItems: []roster.Line{
			{ProductName: "helmet", Quantity: 2},
			{ProductName: "Jersey", Quantity: 1},
			{ProductName: "SHOULDER PADS", Quantity: 4},
		}},
	}})

	require.Len(t, report.Issues, 1)
	assert.Equal(t, roster.IssueItemNotFound, report.Issues[0].Kind)
	assert.Len(t, report.Checkouts, 2)
	assert.Equal(t, 2, report.Summary.Assigned)
	assert.Equal(t, 3, report.Summary.Lines)

	assert.Equal(t, 8, e.onHand(t, helmet.ID))
	assert.Equal(t, 0, e.onHand(t, pads.ID))
	assert.Equal(t, 2, e.book.Len())
}

func TestReconcile_FirstComeFirstServed(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 5)

	report := e.rec.Reconcile(roster.Roster{Players: []roster.Player{
		{Name: "Amy", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 3}}},
		{Name: "Bob", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 3}}},
		{Name: "Cal", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 2}}},
	}})

	require.Len(t, report.Issues, 1)
	assert.Equal(t, "Bob", report.Issues[0].Player)
	assert.Equal(t, 2, report.Issues[0].Available)
	assert.Equal(t, 0, e.onHand(t, helmet.ID))
	assert.Len(t, e.book.List(), 2)
}

func TestReconcile_ResetsPreviousState(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)

	old, err := e.players.Add("Old Timer", nil)
	require.NoError(t, err)
	_, err = e.book.Checkout(old.ID, helmet.ID, 6)
	require.NoError(t, err)

	report := e.rec.Reconcile(bobWants("Helmet", 9))

	assert.Equal(t, 1, report.CheckedIn)
	assert.False(t, report.HasIssues())
	assert.Equal(t, 1, e.onHand(t, helmet.ID))

	players := e.players.List()
	require.Len(t, players, 1)
	assert.Equal(t, "Bob", players[0].Name)
	_, ok := e.players.Find(old.ID)
	assert.False(t, ok)
}

func TestReconcile_DuplicateNamesCollapse(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)

	report := e.rec.Reconcile(roster.Roster{Players: []roster.Player{
		{Name: "Bob", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 1}}},
		{Name: "BOB ", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 2}}},
	}})

	assert.Equal(t, []string{"Bob"}, report.Players)
	assert.Equal(t, 1, e.players.Len())
	holdings := e.book.AssignmentsForItem(helmet.ID)
	require.Len(t, holdings, 2)
	assert.Equal(t, holdings[0].Player.ID, holdings[1].Player.ID)
	assert.Equal(t, 7, e.onHand(t, helmet.ID))
}

func TestReconcile_InvalidEntries(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)

	report := e.rec.Reconcile(roster.Roster{Players: []roster.Player{
		{Name: "  ", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 1}}},
		{Name: "Bob", AssignedItems: []roster.Line{{ProductName: "Helmet", Quantity: 0}}},
	}})

	require.Len(t, report.Issues, 2)
	assert.Equal(t, roster.IssueInvalidPlayer, report.Issues[0].Kind)
	assert.Equal(t, roster.IssueInvalidQuantity, report.Issues[1].Kind)
	assert.Equal(t, 10, e.onHand(t, helmet.ID))
	assert.Equal(t, 0, e.book.Len())
	assert.Equal(t, 1, e.players.Len())
}

func TestReconcile_OrphanedAssignmentDuringReset(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)
	gone := e.item(t, "Old Bag", 1)

	p, _ := e.players.Add("Amy", nil)
	_, _ = e.book.Checkout(p.ID, gone.ID, 1)
	require.NoError(t, e.items.Remove(gone.ID))

	report := e.rec.Reconcile(bobWants("Helmet", 2))

	assert.Equal(t, 1, report.CheckedIn)
	assert.Equal(t, 8, e.onHand(t, helmet.ID))
	assert.Equal(t, 1, e.book.Len())
}

func TestPreview_MatchesReconcileWithoutMutating(t *testing.T) {
	e := newEnv()
	helmet := e.item(t, "Helmet", 10)
	amy, _ := e.players.Add("Amy", nil)
	_, _ = e.book.Checkout(amy.ID, helmet.ID, 4)

	input := roster.Roster{Players: []roster.Player{
		{Name: "Bob", AssignedItems: []roster.Line{
			{ProductName: "Helmet", Quantity: 8},
			{ProductName: "Helmet", Quantity: 3},
			{ProductName: "Cones", Quantity: 1},
		}},
	}}

	preview := e.rec.Preview(input)
	assert.True(t, preview.DryRun)
	assert.Equal(t, 1, preview.CheckedIn)
	assert.Equal(t, 6, e.onHand(t, helmet.ID))
	assert.Equal(t, 1, e.book.Len())
	_, ok := e.players.Find(amy.ID)
	assert.True(t, ok)

	report := e.rec.Reconcile(input)
	assert.False(t, report.DryRun)
	assert.Equal(t, preview.Messages(), report.Messages())
	assert.Equal(t, preview.Summary, report.Summary)
	assert.Equal(t, 2, e.onHand(t, helmet.ID))
}
