// Package roster rebuilds the player roster and its checkouts from an
// externally parsed roster.
//
// A reconciliation replaces the whole player and assignment state:
//
//  1. Reset: every active assignment is checked in, restoring on-hand
//     quantities, then players and assignments are cleared.
//  2. Rebuild: players are created in input order and each requested line is
//     matched by case-insensitive product name and checked out. Later lines
//     see the stock left by earlier ones.
//
// Bad lines never abort the pass. They are collected as Issues in the Report,
// and lines that succeeded stay committed.
//
// Preview runs the same walk against a simulated post-reset stock and mutates
// nothing, so callers can inspect the outcome before committing.
//
// # Usage
//
//	r := roster.NewReconciler(items, players, book, logger)
//	report := r.Reconcile(parsed)
//	for _, issue := range report.Issues {
//	    fmt.Println(issue.Message)
//	}
package roster
