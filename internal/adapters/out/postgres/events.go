package postgres

import (
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/ports"
)

// collectEvents turns tracked aggregates into envelopes. Order events are drained
// from the aggregate so tracking it twice publishes them once. A checkout's
// created orders additionally yield one bundle.created per bundle, emitted after
// the orders' own events.
func collectEvents(tracked []trackedAggregate) []ports.Event {
	var (
		events      []ports.Event
		bundleOrder []kernel.UUID
		bundles     = make(map[kernel.UUID]*ports.Event)
		seenGrants  = make(map[kernel.UUID]struct{})
	)

	for _, t := range tracked {
		switch a := t.Aggregate.(type) {
		case *order.Order:
			for _, e := range a.Events() {
				events = append(events, orderEvent(a, e))

				if e.Type != order.EventCreated || e.BundleID == nil {
					continue
				}
				bundle, ok := bundles[*e.BundleID]
				if !ok {
					bundleID := *e.BundleID
					bundle = &ports.Event{
						Version:     ports.EventVersion,
						Type:        ports.EventBundleCreated,
						OccurredAt:  e.OccurredAt,
						AggregateID: bundleID,
						BundleID:    &bundleID,
						Payload:     ports.BundleCreatedPayload{CustomerID: a.CustomerID()},
					}
					bundles[bundleID] = bundle
					bundleOrder = append(bundleOrder, bundleID)
				}
				payload := bundle.Payload.(ports.BundleCreatedPayload)
				payload.OrderIDs = append(payload.OrderIDs, a.ID())
				bundle.Payload = payload
			}
			a.ClearEvents()

		case *prize.Grant:
			if _, seen := seenGrants[a.ID()]; seen || a.IsRedeemed() {
				continue
			}
			seenGrants[a.ID()] = struct{}{}
			events = append(events, grantEvent(a))
		}
	}

	for _, id := range bundleOrder {
		events = append(events, *bundles[id])
	}

	return events
}

func orderEvent(o *order.Order, e order.Event) ports.Event {
	payload := ports.OrderEventPayload{
		Status:     e.Status.String(),
		CourierID:  e.CourierID,
		CustomerID: o.CustomerID(),
		ProviderID: o.ProviderID(),
	}
	if e.PreviousStatus != order.Unknown {
		payload.PreviousStatus = e.PreviousStatus.String()
	}

	return ports.Event{
		Version:     ports.EventVersion,
		Type:        string(e.Type),
		OccurredAt:  e.OccurredAt,
		AggregateID: e.OrderID,
		BundleID:    e.BundleID,
		Payload:     payload,
	}
}

func grantEvent(g *prize.Grant) ports.Event {
	def := g.Definition()
	return ports.Event{
		Version:     ports.EventVersion,
		Type:        ports.EventPrizeGranted,
		OccurredAt:  g.GrantedAt(),
		AggregateID: g.ID(),
		Payload: ports.PrizeGrantedPayload{
			UserID:     g.UserID(),
			PrizeID:    g.PrizeID(),
			Name:       def.Name,
			Type:       string(def.Type),
			Value:      def.Value,
			ProviderID: def.ProviderID,
		},
	}
}
