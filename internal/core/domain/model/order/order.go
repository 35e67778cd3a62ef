package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemsAreRequired is returned when an order would be left without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Origin tags how an order entered the system. Manual orders are keyed by a
// provider or manager and cannot be rejected by the provider side.
type Origin string

const (
	OriginManual          Origin = "manual"
	OriginCustomerChannel Origin = "customer-channel"
)

// Draft carries everything needed to create an order.
type Draft struct {
	CustomerID        *kernel.UUID
	ProviderID        *kernel.UUID
	BundleID          *kernel.UUID
	GrantID           *kernel.UUID
	Contact           Contact
	Items             []LineItem
	DeliveryFee       kernel.Money
	DeliveryFeeWaived bool
	Discount          kernel.Money
	Origin            Origin
	Notes             string
}

// Snapshot is the full persisted state of an order, used by repositories to
// rebuild the aggregate through RestoreOrder.
type Snapshot struct {
	Draft

	ID           kernel.UUID
	Status       Status
	CourierID    *kernel.UUID
	SupervisorID *kernel.UUID
	IsEdited     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Patch is a partial edit. Nil fields are left unchanged.
type Patch struct {
	Items       []LineItem
	Contact     *Contact
	CourierID   *kernel.UUID
	DeliveryFee *kernel.Money
	Notes       *string
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Items == nil && p.Contact == nil && p.CourierID == nil && p.DeliveryFee == nil && p.Notes == nil
}

// Order is the aggregate root for a single delivery order.
//
// Order follows these invariants:
//   - Items are never empty and the discount never exceeds the subtotal
//   - Status only moves forward along the happy path, or to Cancelled
//   - Every status after Pending carries a courier
//   - Delivered and Cancelled orders are frozen: no edit, transition or deletion
//   - A successful edit sets IsEdited and never changes the status
type Order struct {
	id                kernel.UUID
	customerID        *kernel.UUID
	providerID        *kernel.UUID
	bundleID          *kernel.UUID
	grantID           *kernel.UUID
	contact           Contact
	items             []LineItem
	deliveryFee       kernel.Money
	deliveryFeeWaived bool
	discount          kernel.Money
	origin            Origin
	notes             string
	status            Status
	courierID         *kernel.UUID
	supervisorID      *kernel.UUID
	isEdited          bool
	createdAt         time.Time
	updatedAt         time.Time

	events []Event
	guard  guard.ConstructorGuard
}

// NewOrder creates a Pending order and records an EventCreated.
//
// Example:
//
//	contact, _ := order.NewContact("Sara", "+966500000000", "King Fahd Rd 12")
//	item, _ := order.NewLineItem("Shawarma", 2, 1500, &providerID)
//	o, err := order.NewOrder(kernel.NewUUID(), order.Draft{
//	    Contact:     contact,
//	    Items:       []order.LineItem{item},
//	    DeliveryFee: 1000,
//	    Origin:      order.OriginManual,
//	}, time.Now())
func NewOrder(id kernel.UUID, draft Draft, now time.Time) (*Order, error) {
	o := &Order{
		status:    Pending,
		createdAt: now.UTC(),
		updatedAt: now.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(o.setID(id), o.applyDraft(draft)); err != nil {
		return nil, err
	}

	o.record(EventCreated, Unknown, now)
	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. No events are recorded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		isEdited:  s.IsEdited,
		createdAt: s.CreatedAt.UTC(),
		updatedAt: s.UpdatedAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.applyDraft(s.Draft),
		o.setStatus(s.Status, s.CourierID),
		o.setSupervisorID(s.SupervisorID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() *kernel.UUID {
	return o.customerID
}

func (o *Order) ProviderID() *kernel.UUID {
	return o.providerID
}

// BundleID is the checkout this order belongs to, nil for standalone orders.
func (o *Order) BundleID() *kernel.UUID {
	return o.bundleID
}

// GrantID is the prize grant whose discount was applied to this order.
func (o *Order) GrantID() *kernel.UUID {
	return o.grantID
}

func (o *Order) Contact() Contact {
	return o.contact
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

func (o *Order) DeliveryFee() kernel.Money {
	return o.deliveryFee
}

func (o *Order) DeliveryFeeWaived() bool {
	return o.deliveryFeeWaived
}

func (o *Order) Discount() kernel.Money {
	return o.discount
}

func (o *Order) Origin() Origin {
	return o.origin
}

func (o *Order) Notes() string {
	return o.notes
}

func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned courier's ID, nil while Pending.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Supervisor returns the manager who dispatched the order. It drives order
// visibility for supervisors, independently of who the courier reports to.
func (o *Order) Supervisor() *kernel.UUID {
	return o.supervisorID
}

func (o *Order) IsEdited() bool {
	return o.isEdited
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// CanReject reports whether the provider side may reject (cancel) the order.
func (o *Order) CanReject() bool {
	return o.origin != OriginManual
}

// Subtotal is the sum of all line item totals.
func (o *Order) Subtotal() kernel.Money {
	var total kernel.Money
	for _, item := range o.items {
		total = total.Add(item.Total())
	}
	return total
}

// EffectiveDeliveryFee is the fee actually charged (zero when waived).
func (o *Order) EffectiveDeliveryFee() kernel.Money {
	if o.deliveryFeeWaived {
		return 0
	}
	return o.deliveryFee
}

// Payable is subtotal - discount + effective delivery fee.
func (o *Order) Payable() kernel.Money {
	return o.Subtotal().Sub(o.discount).Add(o.EffectiveDeliveryFee())
}

// Events returns the events recorded since construction or the last ClearEvents.
func (o *Order) Events() []Event {
	out := make([]Event, len(o.events))
	copy(out, o.events)
	return out
}

func (o *Order) ClearEvents() {
	o.events = nil
}

// Assign dispatches a courier. A Pending order becomes Assigned; an order that
// already has a courier keeps its status and changes courier (reassignment).
// supervisorID records who dispatched; nil keeps the current attribution.
func (o *Order) Assign(courierID kernel.UUID, supervisorID *kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewConflictError("order status", o.status.String(), Assigned.String())
	}
	if supervisorID != nil {
		if err := o.setSupervisorID(supervisorID); err != nil {
			return err
		}
	}

	previous := o.status
	o.courierID = &courierID
	o.updatedAt = now.UTC()

	if o.status == Pending {
		o.status = Assigned
		o.record(EventStatusChanged, previous, now)
		return nil
	}

	o.isEdited = true
	o.record(EventEdited, previous, now)
	return nil
}

// Transition moves the order to next. Illegal requests return a ConflictError
// naming the current status; callers must re-read the order before retrying.
func (o *Order) Transition(next Status, now time.Time) error {
	if err := o.status.ValidateTransition(next); err != nil {
		return err
	}
	if next.RequiresCourier() && o.courierID == nil {
		return errs.NewConflictErrorWithCause(
			"order status", o.status.String(), next.String(),
			errors.New("a courier must be assigned first"),
		)
	}

	previous := o.status
	o.status = next
	o.updatedAt = now.UTC()
	o.record(EventStatusChanged, previous, now)
	return nil
}

// Cancel is the universal escape from any non-terminal status.
func (o *Order) Cancel(now time.Time) error {
	return o.Transition(Cancelled, now)
}

// Edit applies a patch to a non-terminal order, marks it edited and keeps the
// status. Changing the courier of a Pending order is refused: dispatch goes
// through Assign, which is the only edit that moves the status.
func (o *Order) Edit(p Patch, now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewConflictError("order status", o.status.String(), "edit")
	}
	if p.IsEmpty() {
		return errs.NewValueIsRequiredError("patch")
	}
	if p.CourierID != nil && o.courierID == nil {
		return errs.NewConflictErrorWithCause(
			"order status", o.status.String(), "courier change",
			errors.New("dispatch a pending order with assign"),
		)
	}

	next := *o
	next.items = o.Items()

	var errList []error
	if p.Items != nil {
		errList = append(errList, next.setItems(p.Items))
	}
	if p.Contact != nil {
		errList = append(errList, next.setContact(*p.Contact))
	}
	if p.CourierID != nil {
		if err := p.CourierID.Validate(); err != nil {
			errList = append(errList, err)
		} else {
			id := *p.CourierID
			next.courierID = &id
		}
	}
	if p.DeliveryFee != nil {
		errList = append(errList, next.setDeliveryFee(*p.DeliveryFee))
	}
	if p.Notes != nil {
		next.notes = strings.TrimSpace(*p.Notes)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	// a shrunken cart cannot keep a discount larger than itself
	next.discount = next.discount.Min(next.Subtotal())

	*o = next
	o.isEdited = true
	o.updatedAt = now.UTC()
	o.record(EventEdited, o.status, now)
	return nil
}

// MarkDeleted checks that the order may be hard-deleted and records EventDeleted.
func (o *Order) MarkDeleted(now time.Time) error {
	if o.status.IsTerminal() {
		return errs.NewConflictError("order status", o.status.String(), "delete")
	}
	o.record(EventDeleted, o.status, now)
	return nil
}

func (o *Order) record(t EventType, previous Status, now time.Time) {
	var courierID *kernel.UUID
	if o.courierID != nil {
		id := *o.courierID
		courierID = &id
	}
	o.events = append(o.events, Event{
		Type:           t,
		OrderID:        o.id,
		BundleID:       o.bundleID,
		Status:         o.status,
		PreviousStatus: previous,
		CourierID:      courierID,
		OccurredAt:     now.UTC(),
	})
}

func (o *Order) applyDraft(d Draft) error {
	if err := errors.Join(
		validateOptionalID(d.CustomerID),
		validateOptionalID(d.ProviderID),
		validateOptionalID(d.BundleID),
		validateOptionalID(d.GrantID),
		o.setContact(d.Contact),
		o.setItems(d.Items),
		o.setDeliveryFee(d.DeliveryFee),
		o.setOrigin(d.Origin),
	); err != nil {
		return err
	}

	if d.Discount > o.Subtotal() {
		return errs.NewValueIsOutOfRangeError("discount", d.Discount, 0, o.Subtotal())
	}

	o.customerID = copyID(d.CustomerID)
	o.providerID = copyID(d.ProviderID)
	o.bundleID = copyID(d.BundleID)
	o.grantID = copyID(d.GrantID)
	o.deliveryFeeWaived = d.DeliveryFeeWaived
	o.discount = d.Discount
	o.notes = strings.TrimSpace(d.Notes)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setContact(c Contact) error {
	if err := c.Validate(); err != nil {
		return err
	}
	o.contact = c
	return nil
}

func (o *Order) setItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]LineItem, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setDeliveryFee(fee kernel.Money) error {
	if fee < 0 {
		return errs.NewValueIsOutOfRangeError("delivery fee", fee, 0, "unbounded")
	}
	o.deliveryFee = fee
	return nil
}

func (o *Order) setOrigin(origin Origin) error {
	if strings.TrimSpace(string(origin)) == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	o.origin = origin
	return nil
}

func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status.RequiresCourier() && courierID == nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", status),
		)
	}
	if status == Pending && courierID != nil {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", status),
		)
	}
	if err := validateOptionalID(courierID); err != nil {
		return err
	}
	o.status = status
	o.courierID = copyID(courierID)
	return nil
}

func (o *Order) setSupervisorID(id *kernel.UUID) error {
	if err := validateOptionalID(id); err != nil {
		return err
	}
	o.supervisorID = copyID(id)
	return nil
}

func validateOptionalID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	return id.Validate()
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}
