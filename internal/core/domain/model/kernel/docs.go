// Package kernel provides the value objects shared by every aggregate of the
// marketplace engine.
//
// The package includes:
//   - UUID: identifier for orders, couriers, users, prizes, grants and bundles
//   - GeoPoint: a validated latitude/longitude pair used by location pings
//   - Money: non-negative amounts in minor currency units
//   - Role and Actor: the closed role enumeration and the explicit caller identity
//
// Values are immutable and safe for concurrent use.
package kernel
