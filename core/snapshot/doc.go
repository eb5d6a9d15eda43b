// Package snapshot is the persistence boundary of the service.
//
// A Store keeps opaque JSON blobs under a small set of well known keys, one
// per collection (inventory, players, assignments). Backends exist for process
// memory, a SQL table through gorm, an S3/MinIO bucket and Redis. Open picks
// one from configuration.
//
// Backends report a missing key as ErrNotExist so callers can tell "never
// saved" apart from a failing backend.
package snapshot
