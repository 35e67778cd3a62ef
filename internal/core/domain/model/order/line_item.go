package order

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")
	ErrContactIsNotConstructed  = errors.New("Contact must be created via NewContact constructor")
)

// LineItem is one ordered product. ProviderID is the provider the item was bought
// from; it is nil for manually keyed items.
type LineItem struct {
	name       string
	quantity   int
	unitPrice  kernel.Money
	providerID *kernel.UUID
	guard      guard.ConstructorGuard
}

func NewLineItem(name string, quantity int, unitPrice kernel.Money, providerID *kernel.UUID) (LineItem, error) {
	item := LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
		item.setProviderID(providerID),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i LineItem) Name() string {
	return i.name
}

func (i LineItem) Quantity() int {
	return i.quantity
}

func (i LineItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i LineItem) ProviderID() *kernel.UUID {
	return i.providerID
}

// Total is unitPrice × quantity.
func (i LineItem) Total() kernel.Money {
	return i.unitPrice.Mul(i.quantity)
}

func (i *LineItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setUnitPrice(price kernel.Money) error {
	if price < 0 {
		return errs.NewValueIsOutOfRangeError("unit price", price, 0, "unbounded")
	}
	i.unitPrice = price
	return nil
}

func (i *LineItem) setProviderID(providerID *kernel.UUID) error {
	if providerID == nil {
		return nil
	}
	if err := providerID.Validate(); err != nil {
		return err
	}
	id := *providerID
	i.providerID = &id
	return nil
}

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// Contact is the customer's name, phone and delivery address.
type Contact struct {
	name    string
	phone   string
	address string
	guard   guard.ConstructorGuard
}

func NewContact(name, phone, address string) (Contact, error) {
	c := Contact{guard: guard.NewConstructorGuard()}

	if err := errors.Join(c.setName(name), c.setPhone(phone), c.setAddress(address)); err != nil {
		return Contact{}, err
	}

	return c, nil
}

func (c Contact) Validate() error {
	return c.guard.Validate(ErrContactIsNotConstructed)
}

func (c Contact) Name() string {
	return c.name
}

func (c Contact) Phone() string {
	return c.phone
}

func (c Contact) Address() string {
	return c.address
}

func (c *Contact) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Contact) setPhone(phone string) error {
	normalized := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(phone)
	if !phonePattern.MatchString(normalized) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a phone number", phone))
	}
	c.phone = normalized
	return nil
}

func (c *Contact) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	c.address = address
	return nil
}
