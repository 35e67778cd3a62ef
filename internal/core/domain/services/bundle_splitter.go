package services

import (
	"errors"
	"math/bits"
	"sort"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrCartIsEmpty is returned when a checkout carries no line items.
	ErrCartIsEmpty = errs.NewValueIsRequiredError("cart")

	// ErrGrantIsNotApplicable is returned when a provider-scoped grant is submitted
	// with a cart that holds nothing from that provider.
	ErrGrantIsNotApplicable = errors.New("prize grant does not apply to this cart")
)

// CartLine is one checkout line. Every line names the provider it is bought from.
type CartLine struct {
	ProviderID kernel.UUID
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
}

// PlannedOrder is one child order of a bundle before it is persisted.
type PlannedOrder struct {
	ProviderID        kernel.UUID
	Items             []order.LineItem
	Subtotal          kernel.Money
	Discount          kernel.Money
	DeliveryFee       kernel.Money
	DeliveryFeeWaived bool
	GrantApplied      bool
}

// Payable is subtotal - discount + the delivery fee unless waived.
func (p PlannedOrder) Payable() kernel.Money {
	fee := p.DeliveryFee
	if p.DeliveryFeeWaived {
		fee = 0
	}
	return p.Subtotal.Sub(p.Discount).Add(fee)
}

// BundlePlan is the outcome of splitting a cart. GrantApplicable is false when a
// grant was offered but cannot discount anything in the cart; callers must drop
// the selection rather than spend it.
type BundlePlan struct {
	Orders          []PlannedOrder
	GrantApplicable bool
}

// Subtotal sums every child order's subtotal.
func (b BundlePlan) Subtotal() kernel.Money {
	var total kernel.Money
	for _, o := range b.Orders {
		total = total.Add(o.Subtotal)
	}
	return total
}

// Discount sums every child order's discount.
func (b BundlePlan) Discount() kernel.Money {
	var total kernel.Money
	for _, o := range b.Orders {
		total = total.Add(o.Discount)
	}
	return total
}

// Payable sums every child order's payable amount.
func (b BundlePlan) Payable() kernel.Money {
	var total kernel.Money
	for _, o := range b.Orders {
		total = total.Add(o.Payable())
	}
	return total
}

// BundleSplitter groups a multi-provider cart into one planned order per provider
// and applies an optional prize grant.
//
// Discount rules:
//   - percent: round-half-up of base × value / 100
//   - flat: min(base, value)
//   - free delivery: the delivery fee of every affected order is waived
//
// The base is the scoped provider's subtotal for provider-scoped grants, or the
// whole cart for global grants. A global discount is apportioned across child
// orders in proportion to their subtotals using the largest remainder method, so
// the parts always add up to the whole in minor units.
type BundleSplitter struct {
	deliveryFee kernel.Money
}

// NewBundleSplitter creates a splitter charging deliveryFee per child order.
func NewBundleSplitter(deliveryFee kernel.Money) BundleSplitter {
	return BundleSplitter{deliveryFee: deliveryFee}
}

// Plan splits the cart. grant may be nil. Provider groups keep the order in which
// the provider first appears in the cart.
func (s BundleSplitter) Plan(lines []CartLine, grant *prize.Grant) (BundlePlan, error) {
	if len(lines) == 0 {
		return BundlePlan{}, ErrCartIsEmpty
	}

	planned, err := s.group(lines)
	if err != nil {
		return BundlePlan{}, err
	}

	plan := BundlePlan{Orders: planned}
	if grant == nil {
		return plan, nil
	}
	if err := grant.Validate(); err != nil {
		return BundlePlan{}, err
	}

	affected := affectedOrders(plan.Orders, grant.Definition())
	if len(affected) == 0 {
		return plan, nil
	}

	plan.GrantApplicable = true
	applyGrant(plan.Orders, affected, grant.Definition())
	return plan, nil
}

func (s BundleSplitter) group(lines []CartLine) ([]PlannedOrder, error) {
	index := make(map[kernel.UUID]int)
	planned := make([]PlannedOrder, 0)

	var errList []error
	for _, line := range lines {
		providerID := line.ProviderID
		item, err := order.NewLineItem(line.Name, line.Quantity, line.UnitPrice, &providerID)
		if err != nil {
			errList = append(errList, err)
			continue
		}

		i, ok := index[providerID]
		if !ok {
			i = len(planned)
			index[providerID] = i
			planned = append(planned, PlannedOrder{ProviderID: providerID, DeliveryFee: s.deliveryFee})
		}

		planned[i].Items = append(planned[i].Items, item)
		planned[i].Subtotal = planned[i].Subtotal.Add(item.Total())
	}

	if err := errors.Join(errList...); err != nil {
		return nil, err
	}
	return planned, nil
}

// affectedOrders returns the indexes of the orders the grant discounts.
func affectedOrders(planned []PlannedOrder, def prize.Definition) []int {
	out := make([]int, 0, len(planned))
	for i, p := range planned {
		if def.IsGlobal() || p.ProviderID.IsEqual(*def.ProviderID) {
			out = append(out, i)
		}
	}
	return out
}

func applyGrant(planned []PlannedOrder, affected []int, def prize.Definition) {
	if def.Type == prize.TypeFreeDelivery {
		for _, i := range affected {
			planned[i].DeliveryFeeWaived = true
			planned[i].GrantApplied = true
		}
		return
	}

	var base kernel.Money
	for _, i := range affected {
		base = base.Add(planned[i].Subtotal)
	}

	var total kernel.Money
	switch def.Type {
	case prize.TypePercentDiscount:
		total = base.Percent(def.Value)
	case prize.TypeFlatDiscount:
		total = base.Min(kernel.Money(def.Value))
	case prize.TypeFreeDelivery:
	}

	weights := make([]kernel.Money, len(affected))
	for j, i := range affected {
		weights[j] = planned[i].Subtotal
	}

	for j, share := range apportion(total, weights) {
		i := affected[j]
		planned[i].Discount = share
		planned[i].GrantApplied = true
	}
}

// apportion splits total across weights proportionally, flooring each share and
// handing the leftover units to the largest fractional remainders (earliest
// index first on ties). total must not exceed the sum of weights.
func apportion(total kernel.Money, weights []kernel.Money) []kernel.Money {
	shares := make([]kernel.Money, len(weights))

	var sum uint64
	for _, w := range weights {
		sum += uint64(w)
	}
	if sum == 0 || total == 0 {
		return shares
	}

	type remainder struct {
		index int
		rem   uint64
	}
	rems := make([]remainder, len(weights))

	var allotted kernel.Money
	for i, w := range weights {
		hi, lo := bits.Mul64(uint64(total), uint64(w))
		quo, rem := bits.Div64(hi, lo, sum)
		shares[i] = kernel.Money(quo)
		allotted += shares[i]
		rems[i] = remainder{index: i, rem: rem}
	}

	sort.SliceStable(rems, func(a, b int) bool {
		return rems[a].rem > rems[b].rem
	})

	for k := 0; allotted < total; k++ {
		shares[rems[k].index]++
		allotted++
	}

	return shares
}
