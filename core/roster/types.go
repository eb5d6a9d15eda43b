package roster

// Roster is the parsed roster handed over by the import source.
type Roster struct {
	Players []Player `json:"players"`
}

// Player is one roster entry.
type Player struct {
	Name          string `json:"name"`
	JerseyNumber  *int   `json:"jerseyNumber,omitempty"`
	AssignedItems []Line `json:"assignedItems"`
}

// Line is one requested item for a player.
type Line struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// IssueKind classifies a reconciliation issue.
type IssueKind string

const (
	// IssueItemNotFound means no inventory item matches the product name.
	IssueItemNotFound IssueKind = "item_not_found"
	// IssueInsufficientStock means the item has fewer units on hand than requested.
	IssueInsufficientStock IssueKind = "insufficient_stock"
	// IssueInvalidPlayer means the entry has no usable name; its lines are skipped.
	IssueInvalidPlayer IssueKind = "invalid_player"
	// IssueInvalidQuantity means the requested quantity is not positive.
	IssueInvalidQuantity IssueKind = "invalid_quantity"
	// IssueCheckoutFailed covers any other checkout failure.
	IssueCheckoutFailed IssueKind = "checkout_failed"
)

// Issue is a non-fatal problem with one roster line or entry.
type Issue struct {
	Kind        IssueKind `json:"kind"`
	Player      string    `json:"player"`
	ProductName string    `json:"productName,omitempty"`
	Available   int       `json:"available,omitempty"`
	Requested   int       `json:"requested,omitempty"`
	Message     string    `json:"message"`
}

// Checkout describes one line that was (or, in a preview, would be) checked out.
type Checkout struct {
	AssignmentID string `json:"assignmentId,omitempty"`
	PlayerID     string `json:"playerId,omitempty"`
	Player       string `json:"player"`
	InventoryID  string `json:"inventoryId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
}

// Report is the outcome of a reconciliation or preview.
type Report struct {
	// DryRun is true for previews; nothing was mutated.
	DryRun bool `json:"dryRun"`

	// CheckedIn counts assignments checked in during the reset phase.
	CheckedIn int `json:"checkedIn"`

	// Players lists the player names in creation order, duplicates collapsed.
	Players []string `json:"players"`

	// Checkouts lists the lines that were applied.
	Checkouts []Checkout `json:"checkouts"`

	// Issues lists the lines and entries that were skipped.
	Issues []Issue `json:"issues"`

	Summary Summary `json:"summary"`
}

// Summary provides aggregate counts for a report.
type Summary struct {
	Players   int `json:"players"`
	Lines     int `json:"lines"`
	Assigned  int `json:"assigned"`
	Issues    int `json:"issues"`
	CheckedIn int `json:"checkedIn"`
}

// HasIssues reports whether any line or entry was skipped.
func (r *Report) HasIssues() bool {
	return len(r.Issues) > 0
}

// Messages returns the human-readable issue messages.
func (r *Report) Messages() []string {
	out := make([]string, 0, len(r.Issues))
	for _, issue := range r.Issues {
		out = append(out, issue.Message)
	}
	return out
}
