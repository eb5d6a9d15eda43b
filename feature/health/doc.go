// Package health reports the state of the service.
//
// # Checks Provided
//
//   - Snapshots: verifies that every collection has been written to the
//     snapshot backend. With ?fix=true the current state is written for the
//     missing ones.
//   - Counts: item, low stock, player and assignment totals.
//
// # HTTP Endpoints
//
//   - GET /health : Runs all checks. Supports ?fix=true.
//   - GET /health/snapshots : Runs the snapshot check. Supports ?fix=true.
package health
