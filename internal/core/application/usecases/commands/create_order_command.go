package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// ItemInput is one line item as submitted by a client, in minor units.
type ItemInput struct {
	Name       string
	Quantity   int
	UnitPrice  int64
	ProviderID *kernel.UUID
}

// ContactInput is the customer contact as submitted by a client.
type ContactInput struct {
	Name    string
	Phone   string
	Address string
}

// CreateOrderInput carries the fields of a manually keyed order. A nil
// DeliveryFee uses the configured default; a non-nil CourierID dispatches the
// order right away.
type CreateOrderInput struct {
	Contact     ContactInput
	Items       []ItemInput
	DeliveryFee *int64
	CustomerID  *kernel.UUID
	ProviderID  *kernel.UUID
	CourierID   *kernel.UUID
	Notes       string
}

// CreateOrderCommand represents a provider or manager keying in a new order.
// Manual orders cannot be rejected by the provider side.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(actor, kernel.NewUUID(), CreateOrderInput{
//	    Contact: ContactInput{Name: "Sara", Phone: "+966500000000", Address: "Olaya St 5"},
//	    Items:   []ItemInput{{Name: "Coffee", Quantity: 2, UnitPrice: 1500}},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	orderID     kernel.UUID
	contact     order.Contact
	items       []order.LineItem
	deliveryFee *kernel.Money
	customerID  *kernel.UUID
	providerID  *kernel.UUID
	courierID   *kernel.UUID
	notes       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the input. Providers always key orders for
// themselves, so their ProviderID is forced to the actor.
func NewCreateOrderCommand(actor kernel.Actor, orderID kernel.UUID, in CreateOrderInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		notes: in.Notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.Validate(),
		orderID.Validate(),
		cmd.setContact(in.Contact),
		cmd.setItems(in.Items),
		cmd.setDeliveryFee(in.DeliveryFee),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	cmd.customerID = in.CustomerID
	cmd.providerID = in.ProviderID
	cmd.courierID = in.CourierID
	if actor.Role() == kernel.RoleProvider {
		id := actor.ID()
		cmd.providerID = &id
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CourierID() *kernel.UUID {
	return c.courierID
}

// Draft builds the order draft, charging defaultFee when no fee was given.
func (c CreateOrderCommand) Draft(defaultFee kernel.Money) order.Draft {
	fee := defaultFee
	if c.deliveryFee != nil {
		fee = *c.deliveryFee
	}
	return order.Draft{
		CustomerID:  c.customerID,
		ProviderID:  c.providerID,
		Contact:     c.contact,
		Items:       c.items,
		DeliveryFee: fee,
		Origin:      order.OriginManual,
		Notes:       c.notes,
	}
}

func (c *CreateOrderCommand) setContact(in ContactInput) error {
	contact, err := order.NewContact(in.Name, in.Phone, in.Address)
	if err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *CreateOrderCommand) setItems(in []ItemInput) error {
	items, err := buildItems(in)
	if err != nil {
		return err
	}
	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDeliveryFee(fee *int64) error {
	if fee == nil {
		return nil
	}
	m, err := kernel.NewMoney(*fee)
	if err != nil {
		return err
	}
	c.deliveryFee = &m
	return nil
}

func buildItems(in []ItemInput) ([]order.LineItem, error) {
	if len(in) == 0 {
		return nil, order.ErrItemsAreRequired
	}

	items := make([]order.LineItem, 0, len(in))
	var errList []error
	for _, i := range in {
		price, err := kernel.NewMoney(i.UnitPrice)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		item, err := order.NewLineItem(i.Name, i.Quantity, price, i.ProviderID)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		items = append(items, item)
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return items, nil
}

func requireManagerOrProvider(actor kernel.Actor, action string) error {
	switch actor.Role() {
	case kernel.RoleOwner, kernel.RoleSupervisor, kernel.RoleProvider:
		return nil
	case kernel.RoleUnknown, kernel.RoleCourier, kernel.RoleCustomer:
	}
	return errs.NewForbiddenError(actor.String(), action)
}
