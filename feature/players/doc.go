// Package players exposes the team roster and equipment checkouts over HTTP.
//
// # HTTP Endpoints
//
//   - GET /players, POST /players, GET /players/:id, DELETE /players/:id
//   - GET /players/:id/assignments : What the player holds.
//   - POST /players/:id/checkout : Assign units of an item.
//   - POST /players/:id/checkin : Return everything the player holds.
//   - GET /assignments : Every active assignment.
//   - DELETE /assignments/:id : Return a single assignment.
//
// Adding a player whose name already exists (ignoring case) returns the
// existing player. Deleting a player checks in everything they hold first.
package players
