package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderInput is a partial edit. Nil fields are left unchanged.
type UpdateOrderInput struct {
	Items       []ItemInput
	Contact     *ContactInput
	CourierID   *kernel.UUID
	DeliveryFee *int64
	Notes       *string
}

// UpdateOrderCommand edits a non-terminal order. A courier change is only a
// reassignment: it is checked against the actor's team like AssignCourier and
// never moves the status.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	orderID   kernel.UUID
	patch     order.Patch

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(actor kernel.Actor, orderID kernel.UUID, in UpdateOrderInput) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(actor.Validate(), orderID.Validate(), cmd.setPatch(in)); err != nil {
		return UpdateOrderCommand{}, err
	}
	if cmd.patch.IsEmpty() {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("patch")
	}

	cmd.actor = actor
	cmd.orderID = orderID
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c UpdateOrderCommand) Patch() order.Patch {
	return c.patch
}

func (c *UpdateOrderCommand) setPatch(in UpdateOrderInput) error {
	var errList []error

	if in.Items != nil {
		items, err := buildItems(in.Items)
		errList = append(errList, err)
		c.patch.Items = items
	}
	if in.Contact != nil {
		contact, err := order.NewContact(in.Contact.Name, in.Contact.Phone, in.Contact.Address)
		errList = append(errList, err)
		c.patch.Contact = &contact
	}
	if in.DeliveryFee != nil {
		fee, err := kernel.NewMoney(*in.DeliveryFee)
		errList = append(errList, err)
		c.patch.DeliveryFee = &fee
	}
	if in.CourierID != nil {
		errList = append(errList, in.CourierID.Validate())
		c.patch.CourierID = in.CourierID
	}
	c.patch.Notes = in.Notes

	return errors.Join(errList...)
}
