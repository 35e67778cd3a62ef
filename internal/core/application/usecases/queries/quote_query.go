package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrQuoteQueryIsNotConstructed = errors.New(
	"QuoteQuery must be created via NewQuoteQuery constructor",
)

// QuoteQuery previews a checkout: the per-provider split, the discount a grant
// would give and the amounts payable. Nothing is written and the grant is not
// spent.
type QuoteQuery struct {
	actor   kernel.Actor
	lines   []services.CartLine
	grantID *kernel.UUID
	guard   guard.ConstructorGuard
}

func NewQuoteQuery(actor kernel.Actor, lines []services.CartLine, grantID *kernel.UUID) (QuoteQuery, error) {
	if err := actor.Validate(); err != nil {
		return QuoteQuery{}, err
	}
	if len(lines) == 0 {
		return QuoteQuery{}, services.ErrCartIsEmpty
	}

	var id *kernel.UUID
	if grantID != nil {
		if err := grantID.Validate(); err != nil {
			return QuoteQuery{}, errs.NewValueIsInvalidErrorWithCause("grant id", err)
		}
		v := *grantID
		id = &v
	}

	return QuoteQuery{
		actor:   actor,
		lines:   append([]services.CartLine(nil), lines...),
		grantID: id,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q QuoteQuery) Validate() error {
	return q.guard.Validate(ErrQuoteQueryIsNotConstructed)
}

func (q QuoteQuery) Actor() kernel.Actor {
	return q.actor
}

func (q QuoteQuery) Lines() []services.CartLine {
	return q.lines
}

func (q QuoteQuery) GrantID() *kernel.UUID {
	return q.grantID
}

// QuoteResponse mirrors the bundle a checkout with the same input would create.
// GrantApplicable is false when the offered grant discounts nothing in the cart;
// the client should then drop the selection.
type QuoteResponse struct {
	Orders          []QuotedOrder
	Subtotal        kernel.Money
	Discount        kernel.Money
	Payable         kernel.Money
	GrantApplicable bool
}

type QuotedOrder struct {
	ProviderID        kernel.UUID
	Items             []LineItemResponse
	Subtotal          kernel.Money
	Discount          kernel.Money
	DeliveryFee       kernel.Money
	DeliveryFeeWaived bool
	Payable           kernel.Money
}
