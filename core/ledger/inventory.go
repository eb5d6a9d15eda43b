package ledger

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type itemEntry struct {
	item Item
	seq  uint64
}

// InventoryStore owns the item catalog and the on-hand quantities.
// It is a plain record of authoritative counts: direct updates are not checked
// against the ledger.
type InventoryStore struct {
	mu    sync.RWMutex
	items map[string]*itemEntry
	seq   uint64
	now   func() time.Time
}

// NewInventoryStore creates an empty store.
func NewInventoryStore() *InventoryStore {
	return &InventoryStore{
		items: make(map[string]*itemEntry),
		now:   time.Now,
	}
}

// Add creates an item with a fresh id and creation timestamp.
func (s *InventoryStore) Add(data NewItem) (Item, error) {
	if data.Quantity < 0 {
		return Item{}, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if !data.Condition.IsValid() {
		return Item{}, &ValidationError{Field: "condition", Reason: "unknown condition " + string(data.Condition)}
	}

	item := Item{
		ID:                 uuid.NewString(),
		Quantity:           data.Quantity,
		ProductName:        data.ProductName,
		Description:        data.Description,
		SearchQuery:        data.SearchQuery,
		SuggestedCondition: data.SuggestedCondition,
		ImageBase64:        data.ImageBase64,
		Condition:          data.Condition,
		Location:           data.Location,
		Notes:              data.Notes,
		ReorderPoint:       cloneInt(data.ReorderPoint),
		DateAdded:          s.now().UTC(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	s.items[item.ID] = &itemEntry{item: item, seq: s.seq}
	return cloneItem(item), nil
}

// Update merges the non-nil fields of patch into the item.
func (s *InventoryStore) Update(id string, patch ItemPatch) (Item, error) {
	if patch.Quantity != nil && *patch.Quantity < 0 {
		return Item{}, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	if patch.Condition != nil && !patch.Condition.IsValid() {
		return Item{}, &ValidationError{Field: "condition", Reason: "unknown condition " + string(*patch.Condition)}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return Item{}, &NotFoundError{Kind: KindItem, ID: id}
	}
	applyPatch(&e.item, patch)
	return cloneItem(e.item), nil
}

// Remove deletes the item. Assignments referencing it are the caller's concern.
func (s *InventoryStore) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return &NotFoundError{Kind: KindItem, ID: id}
	}
	delete(s.items, id)
	return nil
}

// Find returns the item with the given id.
func (s *InventoryStore) Find(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	return cloneItem(e.item), true
}

// FindByProductName returns the item whose product name equals name, ignoring case.
// When several match, the most recently added wins.
func (s *InventoryStore) FindByProductName(name string) (Item, bool) {
	key := FoldName(name)
	for _, item := range s.List() {
		if FoldName(item.ProductName) == key {
			return item, true
		}
	}
	return Item{}, false
}

// List returns all items, most recently added first.
func (s *InventoryStore) List() []Item {
	s.mu.RLock()
	entries := make([]*itemEntry, 0, len(s.items))
	for _, e := range s.items {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].item.DateAdded.Equal(entries[j].item.DateAdded) {
			return entries[i].item.DateAdded.After(entries[j].item.DateAdded)
		}
		return entries[i].seq > entries[j].seq
	})

	out := make([]Item, 0, len(entries))
	for _, e := range entries {
		out = append(out, cloneItem(e.item))
	}
	return out
}

// LowStock returns the items at or below their reorder point, most recently added first.
func (s *InventoryStore) LowStock() []Item {
	var out []Item
	for _, item := range s.List() {
		if item.IsLowStock() {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of items.
func (s *InventoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Restore replaces the catalog with a previously saved snapshot.
// The snapshot is expected in List order.
func (s *InventoryStore) Restore(items []Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*itemEntry, len(items))
	s.seq = 0
	for i := len(items) - 1; i >= 0; i-- {
		if items[i].ID == "" {
			continue
		}
		s.seq++
		s.items[items[i].ID] = &itemEntry{item: cloneItem(items[i]), seq: s.seq}
	}
}

// withdraw decrements the on-hand quantity if enough units are available.
// The check and the decrement happen under one lock.
func (s *InventoryStore) withdraw(id string, quantity int) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return Item{}, &NotFoundError{Kind: KindItem, ID: id}
	}
	if e.item.Quantity < quantity {
		return Item{}, &InsufficientStockError{ItemID: id, Available: e.item.Quantity, Requested: quantity}
	}
	e.item.Quantity -= quantity
	return cloneItem(e.item), nil
}

// deposit increments the on-hand quantity. It reports false if the item is gone.
func (s *InventoryStore) deposit(id string, quantity int) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[id]
	if !ok {
		return Item{}, false
	}
	e.item.Quantity += quantity
	return cloneItem(e.item), true
}

func applyPatch(item *Item, p ItemPatch) {
	if p.ProductName != nil {
		item.ProductName = *p.ProductName
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	if p.Description != nil {
		item.Description = *p.Description
	}
	if p.SearchQuery != nil {
		item.SearchQuery = *p.SearchQuery
	}
	if p.SuggestedCondition != nil {
		item.SuggestedCondition = *p.SuggestedCondition
	}
	if p.ImageBase64 != nil {
		item.ImageBase64 = *p.ImageBase64
	}
	if p.Condition != nil {
		item.Condition = *p.Condition
	}
	if p.Location != nil {
		item.Location = *p.Location
	}
	if p.Notes != nil {
		item.Notes = *p.Notes
	}
	if p.ReorderPoint != nil {
		item.ReorderPoint = cloneInt(p.ReorderPoint)
	}
}

func cloneItem(item Item) Item {
	item.ReorderPoint = cloneInt(item.ReorderPoint)
	return item
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	n := *v
	return &n
}
