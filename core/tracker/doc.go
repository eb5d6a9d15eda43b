// Package tracker is the owning layer of the service. It holds the inventory,
// the players, the assignment ledger and the roster reconciler for one team,
// and after every mutation it writes a full snapshot and publishes events.
//
// Mutations are serialized so that snapshots are always consistent with each
// other. Snapshot and event failures are logged and never fail the operation
// that caused them.
package tracker
