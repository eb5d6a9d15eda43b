package roster

import (
	"strings"

	"team-inventory/core/ledger"
)

// Preview computes the report Reconcile would produce for roster without
// mutating anything. Stock is simulated from the current state as it would be
// after the reset phase.
func (r *Reconciler) Preview(roster Roster) *Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	sim := &simulatedTarget{
		r:       r,
		stock:   make(map[string]int),
		players: make(map[string]ledger.Player),
	}

	checkedIn := 0
	for _, item := range r.items.List() {
		sim.stock[item.ID] = item.Quantity
	}
	for _, a := range r.book.List() {
		checkedIn++
		if _, ok := sim.stock[a.InventoryID]; ok {
			sim.stock[a.InventoryID] += a.Quantity
		}
	}

	report := walk(roster, sim)
	report.DryRun = true
	report.CheckedIn = checkedIn
	report.Summary.CheckedIn = checkedIn
	return report
}

type simulatedTarget struct {
	r       *Reconciler
	stock   map[string]int
	players map[string]ledger.Player
}

func (t *simulatedTarget) addPlayer(name string, jerseyNumber *int) (ledger.Player, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ledger.Player{}, &ledger.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	key := ledger.FoldName(trimmed)
	if p, ok := t.players[key]; ok {
		return p, nil
	}
	p := ledger.Player{Name: trimmed, JerseyNumber: jerseyNumber}
	t.players[key] = p
	return p, nil
}

func (t *simulatedTarget) available(item ledger.Item) int {
	return t.stock[item.ID]
}

func (t *simulatedTarget) checkout(_ ledger.Player, item ledger.Item, quantity int) (string, error) {
	if t.stock[item.ID] < quantity {
		return "", &ledger.InsufficientStockError{ItemID: item.ID, Available: t.stock[item.ID], Requested: quantity}
	}
	t.stock[item.ID] -= quantity
	return "", nil
}

func (t *simulatedTarget) resolve(productName string) (ledger.Item, bool) {
	return t.r.items.FindByProductName(productName)
}
