package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CartLineInput is one cart line as submitted by a client, in minor units.
type CartLineInput struct {
	ProviderID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  int64
}

// CheckoutInput is a cart spanning one or more providers.
type CheckoutInput struct {
	Lines   []CartLineInput
	Contact ContactInput
	GrantID *kernel.UUID
	Notes   string
}

// CheckoutCommand turns a customer's cart into a bundle of orders, one per
// provider, optionally spending a prize grant.
type CheckoutCommand struct {
	actor    kernel.Actor
	bundleID kernel.UUID
	lines    []services.CartLine
	contact  order.Contact
	grantID  *kernel.UUID
	notes    string

	guard guard.ConstructorGuard
}

func NewCheckoutCommand(actor kernel.Actor, bundleID kernel.UUID, in CheckoutInput) (CheckoutCommand, error) {
	errList := []error{actor.Validate(), bundleID.Validate()}

	lines, err := buildCartLines(in.Lines)
	errList = append(errList, err)

	contact, err := order.NewContact(in.Contact.Name, in.Contact.Phone, in.Contact.Address)
	errList = append(errList, err)

	if in.GrantID != nil {
		errList = append(errList, in.GrantID.Validate())
	}

	if err = errors.Join(errList...); err != nil {
		return CheckoutCommand{}, err
	}

	return CheckoutCommand{
		actor:    actor,
		bundleID: bundleID,
		lines:    lines,
		contact:  contact,
		grantID:  in.GrantID,
		notes:    in.Notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

func (c CheckoutCommand) Actor() kernel.Actor {
	return c.actor
}

func (c CheckoutCommand) BundleID() kernel.UUID {
	return c.bundleID
}

func (c CheckoutCommand) Lines() []services.CartLine {
	return c.lines
}

func (c CheckoutCommand) Contact() order.Contact {
	return c.contact
}

func (c CheckoutCommand) GrantID() *kernel.UUID {
	return c.grantID
}

func (c CheckoutCommand) Notes() string {
	return c.notes
}

func buildCartLines(in []CartLineInput) ([]services.CartLine, error) {
	if len(in) == 0 {
		return nil, services.ErrCartIsEmpty
	}

	lines := make([]services.CartLine, 0, len(in))
	var errList []error
	for _, l := range in {
		price, err := kernel.NewMoney(l.UnitPrice)
		if err = errors.Join(err, l.ProviderID.Validate()); err != nil {
			errList = append(errList, err)
			continue
		}
		lines = append(lines, services.CartLine{
			ProviderID: l.ProviderID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  price,
		})
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return lines, nil
}
