package ledger

import "time"

// Condition describes the physical state of an item.
type Condition string

const (
	ConditionNew  Condition = "New"
	ConditionGood Condition = "Good"
	ConditionFair Condition = "Fair"
	ConditionPoor Condition = "Poor"
)

// IsValid reports whether c is one of the known conditions. The empty value is accepted.
func (c Condition) IsValid() bool {
	switch c {
	case "", ConditionNew, ConditionGood, ConditionFair, ConditionPoor:
		return true
	default:
		return false
	}
}

// Item is a piece of equipment owned by the team.
type Item struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id"`

	// Quantity is the number of units on hand, i.e. not checked out.
	Quantity int `json:"quantity"`

	// ProductName is matched case-insensitively during roster imports.
	ProductName string `json:"productName"`

	Description        string    `json:"description"`
	SearchQuery        string    `json:"searchQuery"`
	SuggestedCondition Condition `json:"suggestedCondition,omitempty"`
	ImageBase64        string    `json:"imageBase64,omitempty"`
	Condition          Condition `json:"condition"`
	Location           string    `json:"location"`
	Notes              string    `json:"notes,omitempty"`

	// ReorderPoint is the on-hand quantity at or below which the item is low on stock.
	ReorderPoint *int `json:"reorderPoint,omitempty"`

	DateAdded time.Time `json:"dateAdded"`
}

// IsLowStock reports whether the item has a reorder point and is at or below it.
func (i Item) IsLowStock() bool {
	return i.ReorderPoint != nil && i.Quantity <= *i.ReorderPoint
}

// NewItem holds the fields supplied when adding an item.
type NewItem struct {
	ProductName        string    `json:"productName"`
	Quantity           int       `json:"quantity"`
	Description        string    `json:"description"`
	SearchQuery        string    `json:"searchQuery"`
	SuggestedCondition Condition `json:"suggestedCondition,omitempty"`
	ImageBase64        string    `json:"imageBase64,omitempty"`
	Condition          Condition `json:"condition"`
	Location           string    `json:"location"`
	Notes              string    `json:"notes,omitempty"`
	ReorderPoint       *int      `json:"reorderPoint,omitempty"`
}

// ItemPatch holds a partial update. Nil fields are left untouched.
type ItemPatch struct {
	ProductName        *string    `json:"productName,omitempty"`
	Quantity           *int       `json:"quantity,omitempty"`
	Description        *string    `json:"description,omitempty"`
	SearchQuery        *string    `json:"searchQuery,omitempty"`
	SuggestedCondition *Condition `json:"suggestedCondition,omitempty"`
	ImageBase64        *string    `json:"imageBase64,omitempty"`
	Condition          *Condition `json:"condition,omitempty"`
	Location           *string    `json:"location,omitempty"`
	Notes              *string    `json:"notes,omitempty"`
	ReorderPoint       *int       `json:"reorderPoint,omitempty"`
}

// Player is a member of the team roster.
type Player struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	JerseyNumber *int   `json:"jerseyNumber,omitempty"`
}

// Assignment records units of an item held by a player.
// PlayerID and InventoryID are weak references resolved through the stores.
type Assignment struct {
	ID           string    `json:"id"`
	PlayerID     string    `json:"playerId"`
	InventoryID  string    `json:"inventoryId"`
	Quantity     int       `json:"quantity"`
	DateAssigned time.Time `json:"dateAssigned"`
}

// ItemHolding pairs an assignment with the item it references.
type ItemHolding struct {
	Assignment Assignment `json:"assignment"`
	Item       Item       `json:"item"`
}

// PlayerHolding pairs an assignment with the player holding it.
type PlayerHolding struct {
	Assignment Assignment `json:"assignment"`
	Player     Player     `json:"player"`
}
