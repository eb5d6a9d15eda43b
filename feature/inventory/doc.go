// Package inventory exposes the equipment inventory over HTTP.
//
// # HTTP Endpoints
//
//   - GET /inventory : All items, newest first.
//   - GET /inventory/low-stock : Items at or below their reorder point.
//   - GET /inventory/:id : One item.
//   - POST /inventory : Add an item.
//   - PATCH /inventory/:id : Partial update.
//   - DELETE /inventory/:id : Remove an item and discard its assignments.
//   - GET /inventory/:id/assignments : Players holding the item.
package inventory
