// Package roster exposes the bulk roster import over HTTP.
//
// POST /roster replaces every player and assignment with the contents of a
// parsed roster and returns the reconciliation report. With ?dry_run=true the
// report is computed without changing anything.
//
// The import is best effort: lines that cannot be satisfied are reported as
// issues and the remaining lines are still applied.
package roster
