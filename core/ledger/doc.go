// Package ledger implements the inventory assignment ledger.
//
// It owns the three collections of the team inventory (items, players and
// assignments) and enforces quantity conservation between units on hand and
// units checked out to players.
//
// # Components
//
//   - InventoryStore: catalog of items and their on-hand quantities.
//   - PlayerStore: roster of players, deduplicated by case-insensitive name.
//   - Ledger: active checkouts. Checkout and check-in move units between an
//     item's on-hand quantity and an assignment record in one step.
//
// # Conservation
//
// For every item, the on-hand quantity plus the quantities of all active
// assignments referencing it equals the total owned at the last direct edit.
// A checkout never drives the on-hand quantity below zero and a check-in
// restores exactly the amount that was checked out.
//
// # Usage
//
//	items := ledger.NewInventoryStore()
//	players := ledger.NewPlayerStore(language.English)
//	book := ledger.New(items, players, logger)
//
//	helmet, _ := items.Add(ledger.NewItem{ProductName: "Helmet", Quantity: 10})
//	bob, _ := players.Add("Bob", nil)
//	a, err := book.Checkout(bob.ID, helmet.ID, 3)
package ledger
