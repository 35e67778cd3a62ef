package fleet

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"marketplace/internal/core/domain/model/courier"
	fleetmodel "marketplace/internal/core/domain/model/fleet"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
)

// Roster loads the courier registry the hub scopes subscribers against.
type Roster interface {
	GetAll(ctx context.Context) ([]*courier.Courier, error)
}

// Config tunes the hub. Zero values fall back to defaults.
type Config struct {
	// Staleness is the ping age past which a courier is rendered offline.
	Staleness time.Duration
	// BufferSize is the per-subscriber frame buffer; a full buffer drops frames.
	BufferSize int
	// MaxClockSkew is how far past server time a ping may be stamped before it
	// is dropped.
	MaxClockSkew time.Duration
	// RefreshTimeout bounds the roster reload triggered by registry changes.
	RefreshTimeout time.Duration
}

const (
	defaultBufferSize     = 64
	defaultRefreshTimeout = 5 * time.Second
)

// Hub holds the live fleet state.
//
// Rules:
//   - only pings from known, available couriers are kept, and only the newest per courier
//   - a courier going unavailable, offline or deleted is evicted from every view at once
//   - a subscriber receives frames only for couriers in its actor's visible set,
//     recomputed whenever assignments or availability change
//   - delivery never blocks ingestion: a subscriber with a full buffer loses frames
type Hub struct {
	mu       sync.Mutex
	roster   Roster
	scope    services.ScopeResolver
	observer Observer
	logger   *slog.Logger
	cfg      Config

	couriers map[kernel.UUID]*courier.Courier
	pings    map[kernel.UUID]fleetmodel.Ping
	online   map[kernel.UUID]bool
	subs     map[uint64]*Subscription
	nextID   uint64
}

// NewHub creates an empty hub; call Load to read the registry. observer may be nil.
func NewHub(roster Roster, scope services.ScopeResolver, observer Observer, logger *slog.Logger, cfg Config) *Hub {
	if cfg.Staleness <= 0 {
		cfg.Staleness = fleetmodel.DefaultStaleness
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = defaultBufferSize
	}
	if cfg.MaxClockSkew <= 0 {
		cfg.MaxClockSkew = fleetmodel.DefaultMaxClockSkew
	}
	if cfg.RefreshTimeout <= 0 {
		cfg.RefreshTimeout = defaultRefreshTimeout
	}
	if observer == nil {
		observer = nopObserver{}
	}

	return &Hub{
		roster:   roster,
		scope:    scope,
		observer: observer,
		logger:   logger.With("component", "fleet_hub"),
		cfg:      cfg,
		couriers: make(map[kernel.UUID]*courier.Courier),
		pings:    make(map[kernel.UUID]fleetmodel.Ping),
		online:   make(map[kernel.UUID]bool),
		subs:     make(map[uint64]*Subscription),
	}
}

// Load replaces the registry snapshot, evicts couriers that are gone or no
// longer available and rescopes every subscriber.
func (h *Hub) Load(ctx context.Context) error {
	list, err := h.roster.GetAll(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.couriers = make(map[kernel.UUID]*courier.Courier, len(list))
	for _, c := range list {
		h.couriers[c.ID()] = c
	}

	for id := range h.pings {
		c, ok := h.couriers[id]
		switch {
		case !ok:
			h.evictLocked(id, ReasonRemoved)
		case !c.IsAvailable():
			h.evictLocked(id, ReasonUnavailable)
		}
	}

	h.rescopeLocked()
	return nil
}

// Subscribe registers a live viewer. Only owners and supervisors may watch the
// fleet. The first frame on the returned subscription is a snapshot.
func (h *Hub) Subscribe(actor kernel.Actor) (*Subscription, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if !actor.Role().IsManager() {
		return nil, errs.NewForbiddenError(actor.String(), "watch the live fleet")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscription{
		id:      h.nextID,
		actor:   actor,
		visible: h.scope.VisibleCourierIDs(actor, h.courierListLocked(), services.ScopeOptions{}),
		frames:  make(chan Frame, h.cfg.BufferSize),
	}
	h.subs[sub.id] = sub

	sub.send(newFrame(FrameSnapshot, SnapshotPayload{Couriers: h.locationsLocked(sub.visible, time.Now())}))

	h.observer.SubscribersChanged(len(h.subs))
	h.logger.Debug("Subscriber joined", "actor", actor.String(), "visible", len(sub.visible))
	return sub, nil
}

// Unsubscribe removes the subscription and closes its channel. It is safe to
// call more than once.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.frames)

	h.observer.SubscribersChanged(len(h.subs))
}

// Ingest accepts a ping from a courier. Invalid, future-stamped, out-of-order
// and unavailable couriers' pings are dropped without error; the return value
// reports whether the ping was kept.
func (h *Hub) Ingest(courierID kernel.UUID, in PingInput) bool {
	ping, err := fleetmodel.NewPing(courierID, in.Lat, in.Lng, in.Heading, in.Speed, in.Timestamp)
	if err != nil {
		h.logger.Debug("Dropped invalid ping", "courier", courierID.String(), "error", err)
		h.observer.PingDropped(DropInvalid)
		return false
	}

	now := time.Now()
	if ping.IsAheadOf(now, h.cfg.MaxClockSkew) {
		h.logger.Debug("Dropped future ping", "courier", courierID.String(), "timestamp", ping.Timestamp())
		h.observer.PingDropped(DropFuture)
		return false
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	c, ok := h.couriers[courierID]
	if !ok || !c.IsAvailable() {
		h.logger.Debug("Dropped ping from unavailable courier", "courier", courierID.String())
		h.observer.PingDropped(DropUnavailable)
		return false
	}

	previous, seen := h.pings[courierID]
	if seen && !ping.IsNewerThan(previous) {
		h.observer.PingDropped(DropOutOfOrder)
		return false
	}

	h.pings[courierID] = ping
	online := ping.IsOnline(now, h.cfg.Staleness)
	wasOnline := h.online[courierID]
	h.online[courierID] = online

	h.broadcastLocked(courierID, newFrame(FrameLocation, h.locationOf(ping, now)))
	if seen && online != wasOnline {
		h.broadcastLocked(courierID, newFrame(FramePresence, PresencePayload{
			CourierID: courierID,
			Online:    online,
			LastSeen:  ping.Timestamp(),
		}))
	}

	h.observer.PingAccepted()
	return true
}

// GoOffline evicts a courier that disconnected or signed off, regardless of
// how fresh its last ping is.
func (h *Hub) GoOffline(courierID kernel.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.evictLocked(courierID, ReasonOffline)
}

// AvailabilityChanged implements ports.FleetNotifier.
func (h *Hub) AvailabilityChanged(courierID kernel.UUID, available bool) {
	if h.applyAvailability(courierID, available) {
		return
	}
	h.refresh()
}

// CourierRemoved implements ports.FleetNotifier.
func (h *Hub) CourierRemoved(courierID kernel.UUID) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.evictLocked(courierID, ReasonRemoved)
	delete(h.couriers, courierID)
	h.rescopeLocked()
}

// ScopesChanged implements ports.FleetNotifier by reloading the registry.
func (h *Hub) ScopesChanged() {
	h.refresh()
}

// Snapshot returns the positions the actor may see, sorted by courier id, with
// online computed now. Couriers see only themselves.
func (h *Hub) Snapshot(actor kernel.Actor) ([]Location, error) {
	if err := actor.Validate(); err != nil {
		return nil, err
	}
	if !actor.Role().IsManager() && actor.Role() != kernel.RoleCourier {
		return nil, errs.NewForbiddenError(actor.String(), "watch the live fleet")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	visible := h.scope.VisibleCourierIDs(actor, h.courierListLocked(), services.ScopeOptions{})
	return h.locationsLocked(visible, time.Now()), nil
}

// Sweep re-evaluates presence at now and notifies subscribers of every courier
// whose online state flipped. It returns the number of flips.
func (h *Hub) Sweep(now time.Time) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	flips := 0
	for id, ping := range h.pings {
		online := ping.IsOnline(now, h.cfg.Staleness)
		if online == h.online[id] {
			continue
		}
		h.online[id] = online
		flips++
		h.broadcastLocked(id, newFrame(FramePresence, PresencePayload{
			CourierID: id,
			Online:    online,
			LastSeen:  ping.Timestamp(),
		}))
	}

	return flips
}

// Subscribers returns the number of live subscriptions.
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.subs)
}

func (h *Hub) applyAvailability(courierID kernel.UUID, available bool) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !available {
		h.evictLocked(courierID, ReasonUnavailable)
	}

	c, known := h.couriers[courierID]
	if !known {
		return !available
	}
	if _, err := c.SetAvailability(available); err != nil {
		h.logger.Warn("Ignoring availability change", "courier", courierID.String(), "error", err)
		return true
	}

	h.rescopeLocked()
	return true
}

func (h *Hub) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), h.cfg.RefreshTimeout)
	defer cancel()

	if err := h.Load(ctx); err != nil {
		h.logger.ErrorContext(ctx, "Failed to reload courier roster", "error", err)
	}
}

func (h *Hub) evictLocked(courierID kernel.UUID, reason string) {
	if _, ok := h.pings[courierID]; !ok {
		return
	}

	h.broadcastLocked(courierID, newFrame(FrameEvicted, EvictedPayload{CourierID: courierID, Reason: reason}))
	delete(h.pings, courierID)
	delete(h.online, courierID)
}

// rescopeLocked recomputes every visible set. Couriers leaving a view are
// evicted from it; couriers entering it are sent their latest position.
func (h *Hub) rescopeLocked() {
	list := h.courierListLocked()
	now := time.Now()

	for _, sub := range h.subs {
		next := h.scope.VisibleCourierIDs(sub.actor, list, services.ScopeOptions{})

		for id := range sub.visible {
			if _, still := next[id]; still {
				continue
			}
			if _, ok := h.pings[id]; ok {
				h.deliver(sub, newFrame(FrameEvicted, EvictedPayload{CourierID: id, Reason: ReasonOutOfScope}))
			}
		}
		for id := range next {
			if _, already := sub.visible[id]; already {
				continue
			}
			if ping, ok := h.pings[id]; ok {
				h.deliver(sub, newFrame(FrameLocation, h.locationOf(ping, now)))
			}
		}

		sub.visible = next
	}
}

func (h *Hub) broadcastLocked(courierID kernel.UUID, frame Frame) {
	for _, sub := range h.subs {
		if _, ok := sub.visible[courierID]; ok {
			h.deliver(sub, frame)
		}
	}
}

func (h *Hub) deliver(sub *Subscription, frame Frame) {
	if !sub.send(frame) {
		h.observer.FrameDropped()
	}
}

func (h *Hub) courierListLocked() []*courier.Courier {
	list := make([]*courier.Courier, 0, len(h.couriers))
	for _, c := range h.couriers {
		list = append(list, c)
	}
	return list
}

func (h *Hub) locationsLocked(visible map[kernel.UUID]struct{}, now time.Time) []Location {
	out := make([]Location, 0, len(visible))
	for id := range visible {
		if ping, ok := h.pings[id]; ok {
			out = append(out, h.locationOf(ping, now))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CourierID.String() < out[j].CourierID.String()
	})
	return out
}

func (h *Hub) locationOf(ping fleetmodel.Ping, now time.Time) Location {
	pos := ping.Position()
	return Location{
		CourierID: ping.CourierID(),
		Lat:       pos.Lat(),
		Lng:       pos.Lng(),
		Heading:   ping.Heading(),
		Speed:     ping.Speed(),
		Timestamp: ping.Timestamp(),
		Online:    ping.IsOnline(now, h.cfg.Staleness),
	}
}

// Subscription is one live viewer's feed.
type Subscription struct {
	id      uint64
	actor   kernel.Actor
	visible map[kernel.UUID]struct{}
	frames  chan Frame
}

// Frames is closed when the subscription is removed.
func (s *Subscription) Frames() <-chan Frame {
	return s.frames
}

func (s *Subscription) Actor() kernel.Actor {
	return s.actor
}

func (s *Subscription) send(frame Frame) bool {
	select {
	case s.frames <- frame:
		return true
	default:
		return false
	}
}
