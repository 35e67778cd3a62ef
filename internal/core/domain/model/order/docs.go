// Package order holds the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: identity, contact, line items, fees, discount, courier and dispatch attribution
//   - Status: pending → assigned → ready_for_pickup → picked_up → in_transit → delivered, plus cancelled
//   - LineItem and Contact: validated value objects
//   - Event: facts recorded by the aggregate and published after commit
//
// Key business rules:
//   - Creation always starts at pending; assigning a courier moves pending to assigned
//   - Transitions never move backward; cancelled is reachable from every non-terminal status
//   - Delivered and cancelled are terminal: edits, transitions and deletion are conflicts
//   - Edits mark the order as edited and never change its status
//   - Manual orders cannot be rejected by their provider
package order
