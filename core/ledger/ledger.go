package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assignmentEntry struct {
	assignment Assignment
	seq        uint64
}

// Ledger owns the active checkouts and keeps item quantities in lockstep with them.
type Ledger struct {
	mu          sync.RWMutex
	items       *InventoryStore
	players     *PlayerStore
	assignments map[string]*assignmentEntry
	seq         uint64
	logger      *zap.Logger
	now         func() time.Time
}

// New creates an empty ledger over the given stores.
func New(items *InventoryStore, players *PlayerStore, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		items:       items,
		players:     players,
		assignments: make(map[string]*assignmentEntry),
		logger:      logger,
		now:         time.Now,
	}
}

// Checkout moves quantity units of an item from on hand to the player.
// On any error nothing is mutated.
func (l *Ledger) Checkout(playerID, inventoryID string, quantity int) (Assignment, error) {
	if quantity <= 0 {
		return Assignment{}, &ValidationError{Field: "quantity", Reason: "must be positive"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.players.Find(playerID); !ok {
		return Assignment{}, &NotFoundError{Kind: KindPlayer, ID: playerID}
	}
	if _, err := l.items.withdraw(inventoryID, quantity); err != nil {
		return Assignment{}, err
	}

	a := Assignment{
		ID:           uuid.NewString(),
		PlayerID:     playerID,
		InventoryID:  inventoryID,
		Quantity:     quantity,
		DateAssigned: l.now().UTC(),
	}
	l.seq++
	l.assignments[a.ID] = &assignmentEntry{assignment: a, seq: l.seq}
	return a, nil
}

// CheckIn returns the assignment's units to the item and removes the assignment.
// If the item no longer exists the restore is skipped and logged.
func (l *Ledger) CheckIn(a Assignment) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.checkIn(a.ID)
}

// CheckInAllForPlayer checks in every assignment held by the player and returns
// how many were checked in. Failures are skipped; the batch is not transactional.
func (l *Ledger) CheckInAllForPlayer(playerID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, id := range l.idsWhere(func(a Assignment) bool { return a.PlayerID == playerID }) {
		if err := l.checkIn(id); err != nil {
			l.logger.Warn("Skipped check-in", zap.String("assignment_id", id), zap.Error(err))
			continue
		}
		n++
	}
	return n
}

// CheckInAll checks in every active assignment and returns the count.
func (l *Ledger) CheckInAll() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, id := range l.idsWhere(func(Assignment) bool { return true }) {
		if err := l.checkIn(id); err != nil {
			l.logger.Warn("Skipped check-in", zap.String("assignment_id", id), zap.Error(err))
			continue
		}
		n++
	}
	return n
}

// RemoveAssignmentsForItem drops the item's assignments without restoring
// quantity. It is used when the item itself is being deleted.
func (l *Ledger) RemoveAssignmentsForItem(itemID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	ids := l.idsWhere(func(a Assignment) bool { return a.InventoryID == itemID })
	for _, id := range ids {
		delete(l.assignments, id)
	}
	return len(ids)
}

// AssignmentsForPlayer returns the player's assignments joined with their items.
// Assignments whose item has vanished are left out.
func (l *Ledger) AssignmentsForPlayer(playerID string) []ItemHolding {
	out := []ItemHolding{}
	for _, a := range l.List() {
		if a.PlayerID != playerID {
			continue
		}
		item, ok := l.items.Find(a.InventoryID)
		if !ok {
			continue
		}
		out = append(out, ItemHolding{Assignment: a, Item: item})
	}
	return out
}

// AssignmentsForItem returns the item's assignments joined with their players.
// Assignments whose player has vanished are left out.
func (l *Ledger) AssignmentsForItem(itemID string) []PlayerHolding {
	out := []PlayerHolding{}
	for _, a := range l.List() {
		if a.InventoryID != itemID {
			continue
		}
		p, ok := l.players.Find(a.PlayerID)
		if !ok {
			continue
		}
		out = append(out, PlayerHolding{Assignment: a, Player: p})
	}
	return out
}

// Find returns the active assignment with the given id.
func (l *Ledger) Find(id string) (Assignment, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.assignments[id]
	if !ok {
		return Assignment{}, false
	}
	return e.assignment, true
}

// List returns all active assignments, most recently assigned first.
func (l *Ledger) List() []Assignment {
	l.mu.RLock()
	entries := make([]*assignmentEntry, 0, len(l.assignments))
	for _, e := range l.assignments {
		entries = append(entries, e)
	}
	l.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].assignment.DateAssigned.Equal(entries[j].assignment.DateAssigned) {
			return entries[i].assignment.DateAssigned.After(entries[j].assignment.DateAssigned)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]Assignment, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.assignment)
	}
	return out
}

// Len returns the number of active assignments.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.assignments)
}

// Clear drops every assignment without touching item quantities.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.assignments = make(map[string]*assignmentEntry)
}

// Restore replaces the active assignments with a previously saved snapshot.
// The snapshot is expected in List order. Quantities are taken as already
// reflected in the restored inventory.
func (l *Ledger) Restore(assignments []Assignment) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.assignments = make(map[string]*assignmentEntry, len(assignments))
	l.seq = 0
	for i := len(assignments) - 1; i >= 0; i-- {
		a := assignments[i]
		if a.ID == "" || a.Quantity <= 0 {
			continue
		}
		l.seq++
		l.assignments[a.ID] = &assignmentEntry{assignment: a, seq: l.seq}
	}
}

// checkIn requires l.mu to be held.
func (l *Ledger) checkIn(id string) error {
	e, ok := l.assignments[id]
	if !ok {
		return &NotFoundError{Kind: KindAssignment, ID: id}
	}
	a := e.assignment

	if _, ok := l.items.deposit(a.InventoryID, a.Quantity); !ok {
		l.logger.Warn("Checked in assignment for missing item, quantity not restored",
			zap.String("assignment_id", a.ID),
			zap.String("inventory_id", a.InventoryID),
			zap.Int("quantity", a.Quantity),
		)
	}
	delete(l.assignments, id)
	return nil
}

// idsWhere requires l.mu to be held.
func (l *Ledger) idsWhere(match func(Assignment) bool) []string {
	var ids []string
	for id, e := range l.assignments {
		if match(e.assignment) {
			ids = append(ids, id)
		}
	}
	return ids
}
