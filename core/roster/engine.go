package roster

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"team-inventory/core/ledger"

	"go.uber.org/zap"
)

// Reconciler replaces the roster and its checkouts from a parsed roster.
type Reconciler struct {
	mu      sync.Mutex
	items   *ledger.InventoryStore
	players *ledger.PlayerStore
	book    *ledger.Ledger
	logger  *zap.Logger
}

// NewReconciler creates a reconciler over the given stores.
func NewReconciler(items *ledger.InventoryStore, players *ledger.PlayerStore, book *ledger.Ledger, logger *zap.Logger) *Reconciler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reconciler{
		items:   items,
		players: players,
		book:    book,
		logger:  logger,
	}
}

// Reconcile resets players and assignments, then rebuilds them from roster.
// It always runs to completion; skipped lines are reported as issues and
// successful lines are not rolled back.
func (r *Reconciler) Reconcile(roster Roster) *Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	checkedIn := r.book.CheckInAll()
	r.players.Clear()
	r.book.Clear()

	r.logger.Info("Roster reset complete", zap.Int("checked_in", checkedIn))

	report := walk(roster, &liveTarget{r: r})
	report.CheckedIn = checkedIn
	report.Summary.CheckedIn = checkedIn

	r.logger.Info("Roster reconciled",
		zap.Int("players", report.Summary.Players),
		zap.Int("assigned", report.Summary.Assigned),
		zap.Int("issues", report.Summary.Issues),
	)
	return report
}

// target abstracts the side effects of a walk so that Reconcile and Preview
// share one algorithm.
type target interface {
	addPlayer(name string, jerseyNumber *int) (ledger.Player, error)
	available(item ledger.Item) int
	checkout(player ledger.Player, item ledger.Item, quantity int) (string, error)
	resolve(productName string) (ledger.Item, bool)
}

type liveTarget struct {
	r *Reconciler
}

func (t *liveTarget) addPlayer(name string, jerseyNumber *int) (ledger.Player, error) {
	return t.r.players.Add(name, jerseyNumber)
}

func (t *liveTarget) available(item ledger.Item) int {
	return item.Quantity
}

func (t *liveTarget) checkout(player ledger.Player, item ledger.Item, quantity int) (string, error) {
	a, err := t.r.book.Checkout(player.ID, item.ID, quantity)
	if err != nil {
		return "", err
	}
	return a.ID, nil
}

func (t *liveTarget) resolve(productName string) (ledger.Item, bool) {
	return t.r.items.FindByProductName(productName)
}

func walk(roster Roster, t target) *Report {
	report := &Report{
		Players:   []string{},
		Checkouts: []Checkout{},
		Issues:    []Issue{},
	}
	seen := make(map[string]struct{})

	for i, entry := range roster.Players {
		player, err := t.addPlayer(entry.Name, entry.JerseyNumber)
		if err != nil {
			report.Issues = append(report.Issues, Issue{
				Kind:    IssueInvalidPlayer,
				Player:  entry.Name,
				Message: fmt.Sprintf("Player entry %d has no name; %d item(s) skipped.", i+1, len(entry.AssignedItems)),
			})
			report.Summary.Lines += len(entry.AssignedItems)
			continue
		}
		if key := ledger.FoldName(player.Name); !contains(seen, key) {
			seen[key] = struct{}{}
			report.Players = append(report.Players, player.Name)
		}

		for _, line := range entry.AssignedItems {
			report.Summary.Lines++
			if issue, ok := applyLine(t, player, line, report); !ok {
				report.Issues = append(report.Issues, issue)
			}
		}
	}

	report.Summary.Players = len(report.Players)
	report.Summary.Assigned = len(report.Checkouts)
	report.Summary.Issues = len(report.Issues)
	return report
}

func applyLine(t target, player ledger.Player, line Line, report *Report) (Issue, bool) {
	item, ok := t.resolve(line.ProductName)
	if !ok {
		return Issue{
			Kind:        IssueItemNotFound,
			Player:      player.Name,
			ProductName: line.ProductName,
			Requested:   line.Quantity,
			Message:     fmt.Sprintf("Item \"%s\" for player %s not found in inventory.", line.ProductName, player.Name),
		}, false
	}

	if line.Quantity <= 0 {
		return Issue{
			Kind:        IssueInvalidQuantity,
			Player:      player.Name,
			ProductName: line.ProductName,
			Requested:   line.Quantity,
			Message:     fmt.Sprintf("Invalid quantity %d for \"%s\" for player %s.", line.Quantity, line.ProductName, player.Name),
		}, false
	}

	available := t.available(item)
	if available < line.Quantity {
		return insufficient(player, line, available), false
	}

	assignmentID, err := t.checkout(player, item, line.Quantity)
	if err != nil {
		var stock *ledger.InsufficientStockError
		if errors.As(err, &stock) {
			return insufficient(player, line, stock.Available), false
		}
		return Issue{
			Kind:        IssueCheckoutFailed,
			Player:      player.Name,
			ProductName: line.ProductName,
			Requested:   line.Quantity,
			Message:     fmt.Sprintf("Could not assign \"%s\" to player %s: %s.", line.ProductName, player.Name, strings.TrimSuffix(err.Error(), ".")),
		}, false
	}

	report.Checkouts = append(report.Checkouts, Checkout{
		AssignmentID: assignmentID,
		PlayerID:     player.ID,
		Player:       player.Name,
		InventoryID:  item.ID,
		ProductName:  item.ProductName,
		Quantity:     line.Quantity,
	})
	return Issue{}, true
}

func insufficient(player ledger.Player, line Line, available int) Issue {
	return Issue{
		Kind:        IssueInsufficientStock,
		Player:      player.Name,
		ProductName: line.ProductName,
		Available:   available,
		Requested:   line.Quantity,
		Message: fmt.Sprintf("Not enough stock for \"%s\" for player %s. Available: %d, Needed: %d.",
			line.ProductName, player.Name, available, line.Quantity),
	}
}

func contains(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}
