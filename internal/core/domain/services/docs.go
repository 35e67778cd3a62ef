// Package services provides domain services that span more than one aggregate
// or hold no state of their own.
//
// The package includes:
//   - ScopeResolver: maps an actor to the couriers and orders it may see or mutate
//   - OrderAssigner: dispatches a courier to an order inside the actor's scope
//   - BundleSplitter: turns a multi-provider cart and an optional prize grant into
//     a plan of child orders
//   - PrizeSelector: weighted random draw over the prize table
package services
