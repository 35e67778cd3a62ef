// Package courier provides the Courier aggregate and the supervisor assignment
// registry that hangs off it.
//
// The package includes:
//   - Courier: the aggregate root holding identity, contact phone, availability
//     and soft-delete state
//   - Assignment: a child entity linking the courier to one supervisor
//
// Key business rules:
//   - A courier may report to zero, one or many supervisors at the same time
//   - Adding an existing assignment or removing an absent one is a successful no-op
//   - Soft-deleting a courier removes all of its assignments and makes it unavailable
//   - A deleted courier cannot be reassigned or made available again
package courier
