package ports

import "marketplace/internal/core/domain/model/kernel"

// FleetNotifier receives committed courier changes that affect the live map.
type FleetNotifier interface {
	// AvailabilityChanged admits the courier to live views, or evicts it when
	// available is false.
	AvailabilityChanged(courierID kernel.UUID, available bool)

	// CourierRemoved evicts a deleted courier.
	CourierRemoved(courierID kernel.UUID)

	// ScopesChanged asks every live subscriber to recompute its visible set.
	ScopesChanged()
}
