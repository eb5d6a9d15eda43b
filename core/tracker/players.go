package tracker

import (
	"context"
	"time"

	"team-inventory/core/events"
	"team-inventory/core/ledger"

	"go.uber.org/zap"
)

// AddPlayer registers a player, returning the existing one when the name
// already exists ignoring case.
func (t *Tracker) AddPlayer(ctx context.Context, name string, jerseyNumber *int) (ledger.Player, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	before := t.players.Len()
	player, err := t.players.Add(name, jerseyNumber)
	if err != nil {
		return ledger.Player{}, err
	}
	if t.players.Len() != before {
		t.persist(ctx)
	}
	return player, nil
}

// DeletePlayer checks in everything the player holds and then removes the
// player. It returns the number of assignments checked in.
func (t *Tracker) DeletePlayer(ctx context.Context, id string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players.Find(id); !ok {
		return 0, &ledger.NotFoundError{Kind: ledger.KindPlayer, ID: id}
	}

	held := t.book.AssignmentsForPlayer(id)
	checkedIn := t.book.CheckInAllForPlayer(id)
	if err := t.players.Remove(id); err != nil {
		return checkedIn, err
	}
	t.logger.Info("Player removed", zap.String("player_id", id), zap.Int("checked_in", checkedIn))

	t.persist(ctx)
	t.publish(ctx, checkedInEvents(held)...)
	return checkedIn, nil
}

// ListPlayers returns the roster in name order.
func (t *Tracker) ListPlayers() []ledger.Player {
	return t.players.List()
}

// FindPlayer looks up a player by id.
func (t *Tracker) FindPlayer(id string) (ledger.Player, bool) {
	return t.players.Find(id)
}

// PlayerAssignments returns what the player currently holds.
func (t *Tracker) PlayerAssignments(id string) ([]ledger.ItemHolding, error) {
	if _, ok := t.players.Find(id); !ok {
		return nil, &ledger.NotFoundError{Kind: ledger.KindPlayer, ID: id}
	}
	return t.book.AssignmentsForPlayer(id), nil
}

// Checkout assigns quantity units of an item to a player.
func (t *Tracker) Checkout(ctx context.Context, playerID, inventoryID string, quantity int) (ledger.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, err := t.book.Checkout(playerID, inventoryID, quantity)
	if err != nil {
		return ledger.Assignment{}, err
	}

	t.persist(ctx)
	ev := assignmentEvent(events.TypeItemCheckedOut, a)
	if item, ok := t.items.Find(inventoryID); ok {
		ev.ProductName = item.ProductName
	}
	t.publish(ctx, ev)
	return a, nil
}

// CheckIn returns a single assignment to stock.
func (t *Tracker) CheckIn(ctx context.Context, assignmentID string) (ledger.Assignment, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	a, ok := t.book.Find(assignmentID)
	if !ok {
		return ledger.Assignment{}, &ledger.NotFoundError{Kind: ledger.KindAssignment, ID: assignmentID}
	}
	if err := t.book.CheckIn(a); err != nil {
		return ledger.Assignment{}, err
	}

	t.persist(ctx)
	t.publish(ctx, assignmentEvent(events.TypeItemCheckedIn, a))
	return a, nil
}

// CheckInAll returns everything a player holds to stock.
func (t *Tracker) CheckInAll(ctx context.Context, playerID string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.players.Find(playerID); !ok {
		return 0, &ledger.NotFoundError{Kind: ledger.KindPlayer, ID: playerID}
	}

	held := t.book.AssignmentsForPlayer(playerID)
	n := t.book.CheckInAllForPlayer(playerID)
	if n > 0 {
		t.persist(ctx)
		t.publish(ctx, checkedInEvents(held)...)
	}
	return n, nil
}

// ListAssignments returns every active assignment, newest first.
func (t *Tracker) ListAssignments() []ledger.Assignment {
	return t.book.List()
}

func assignmentEvent(typ events.Type, a ledger.Assignment) events.Event {
	return events.Event{
		Type:         typ,
		OccurredAt:   time.Now().UTC(),
		AssignmentID: a.ID,
		PlayerID:     a.PlayerID,
		InventoryID:  a.InventoryID,
		Quantity:     a.Quantity,
	}
}

func checkedInEvents(held []ledger.ItemHolding) []events.Event {
	out := make([]events.Event, 0, len(held))
	for _, h := range held {
		ev := assignmentEvent(events.TypeItemCheckedIn, h.Assignment)
		ev.ProductName = h.Item.ProductName
		out = append(out, ev)
	}
	return out
}
