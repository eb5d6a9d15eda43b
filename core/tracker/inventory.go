package tracker

import (
	"context"
	"time"

	"team-inventory/core/events"
	"team-inventory/core/ledger"

	"go.uber.org/zap"
)

// AddItem stores a new inventory item.
func (t *Tracker) AddItem(ctx context.Context, data ledger.NewItem) (ledger.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, err := t.items.Add(data)
	if err != nil {
		return ledger.Item{}, err
	}
	t.persist(ctx)
	return item, nil
}

// UpdateItem applies a partial update to an item.
func (t *Tracker) UpdateItem(ctx context.Context, id string, patch ledger.ItemPatch) (ledger.Item, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, err := t.items.Update(id, patch)
	if err != nil {
		return ledger.Item{}, err
	}
	t.persist(ctx)
	return item, nil
}

// DeleteItem removes an item together with every assignment that references
// it. Quantities held by players are discarded, not restored. It returns the
// number of assignments removed.
func (t *Tracker) DeleteItem(ctx context.Context, id string) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	item, ok := t.items.Find(id)
	if !ok {
		return 0, &ledger.NotFoundError{Kind: ledger.KindItem, ID: id}
	}

	removed := t.book.RemoveAssignmentsForItem(id)
	if err := t.items.Remove(id); err != nil {
		return removed, err
	}
	t.logger.Info("Item removed",
		zap.String("inventory_id", id),
		zap.Int("assignments_removed", removed),
	)

	t.persist(ctx)
	t.publish(ctx, events.Event{
		Type:        events.TypeItemRemoved,
		OccurredAt:  time.Now().UTC(),
		InventoryID: id,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
	})
	return removed, nil
}

// ListItems returns every item, newest first.
func (t *Tracker) ListItems() []ledger.Item {
	return t.items.List()
}

// FindItem looks up an item by id.
func (t *Tracker) FindItem(id string) (ledger.Item, bool) {
	return t.items.Find(id)
}

// LowStock returns the items at or below their reorder point.
func (t *Tracker) LowStock() []ledger.Item {
	return t.items.LowStock()
}

// ItemAssignments returns who holds units of the item.
func (t *Tracker) ItemAssignments(id string) ([]ledger.PlayerHolding, error) {
	if _, ok := t.items.Find(id); !ok {
		return nil, &ledger.NotFoundError{Kind: ledger.KindItem, ID: id}
	}
	return t.book.AssignmentsForItem(id), nil
}
