package http

import (
	"errors"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
)

// Requests.

type Contact struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Item struct {
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	UnitPrice  int64        `json:"unitPrice"`
	ProviderID *kernel.UUID `json:"providerId,omitempty"`
}

type NewCourier struct {
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	SupervisorIDs []kernel.UUID `json:"supervisorIds"`
}

type Availability struct {
	Available *bool `json:"available"`
}

type NewOrder struct {
	Contact     Contact      `json:"contact"`
	Items       []Item       `json:"items"`
	DeliveryFee *int64       `json:"deliveryFee,omitempty"`
	CustomerID  *kernel.UUID `json:"customerId,omitempty"`
	ProviderID  *kernel.UUID `json:"providerId,omitempty"`
	CourierID   *kernel.UUID `json:"courierId,omitempty"`
	Notes       string       `json:"notes"`
}

type OrderPatch struct {
	Items       []Item       `json:"items,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
	CourierID   *kernel.UUID `json:"courierId,omitempty"`
	DeliveryFee *int64       `json:"deliveryFee,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
}

type Assignment struct {
	CourierID kernel.UUID `json:"courierId"`
}

type StatusChange struct {
	Status string `json:"status"`
}

type CartLine struct {
	ProviderID kernel.UUID `json:"providerId"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	UnitPrice  int64       `json:"unitPrice"`
}

type Cart struct {
	Lines   []CartLine   `json:"lines"`
	GrantID *kernel.UUID `json:"grantId,omitempty"`
}

type Checkout struct {
	Cart
	Contact Contact `json:"contact"`
	Notes   string  `json:"notes"`
}

type PrizeDefinition struct {
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Value      int64        `json:"value"`
	ProviderID *kernel.UUID `json:"providerId,omitempty"`
}

type NewPrize struct {
	PrizeDefinition
	Weight float64 `json:"weight"`
	Color  string  `json:"color"`
}

type PrizePatch struct {
	Definition *PrizeDefinition `json:"definition,omitempty"`
	Weight     *float64         `json:"weight,omitempty"`
	Color      *string          `json:"color,omitempty"`
	Active     *bool            `json:"active,omitempty"`
}

// Responses.

type Courier struct {
	ID            kernel.UUID   `json:"id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Available     bool          `json:"available"`
	SupervisorIDs []kernel.UUID `json:"supervisorIds"`
}

type LineItem struct {
	Name       string       `json:"name"`
	Quantity   int          `json:"quantity"`
	UnitPrice  int64        `json:"unitPrice"`
	Total      int64        `json:"total"`
	ProviderID *kernel.UUID `json:"providerId,omitempty"`
}

type Order struct {
	ID                kernel.UUID  `json:"id"`
	Status            string       `json:"status"`
	Group             string       `json:"group"`
	NextStatuses      []string     `json:"nextStatuses"`
	CustomerID        *kernel.UUID `json:"customerId,omitempty"`
	ProviderID        *kernel.UUID `json:"providerId,omitempty"`
	BundleID          *kernel.UUID `json:"bundleId,omitempty"`
	GrantID           *kernel.UUID `json:"grantId,omitempty"`
	CourierID         *kernel.UUID `json:"courierId,omitempty"`
	SupervisorID      *kernel.UUID `json:"supervisorId,omitempty"`
	Contact           Contact      `json:"contact"`
	Items             []LineItem   `json:"items"`
	Subtotal          int64        `json:"subtotal"`
	Discount          int64        `json:"discount"`
	DeliveryFee       int64        `json:"deliveryFee"`
	DeliveryFeeWaived bool         `json:"deliveryFeeWaived"`
	Payable           int64        `json:"payable"`
	Origin            string       `json:"origin"`
	CanReject         bool         `json:"canReject"`
	IsEdited          bool         `json:"isEdited"`
	Notes             string       `json:"notes"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

type Bundle struct {
	ID      kernel.UUID  `json:"id"`
	Orders  []Order      `json:"orders"`
	GrantID *kernel.UUID `json:"grantId,omitempty"`
}

type QuotedOrder struct {
	ProviderID        kernel.UUID `json:"providerId"`
	Items             []LineItem  `json:"items"`
	Subtotal          int64       `json:"subtotal"`
	Discount          int64       `json:"discount"`
	DeliveryFee       int64       `json:"deliveryFee"`
	DeliveryFeeWaived bool        `json:"deliveryFeeWaived"`
	Payable           int64       `json:"payable"`
}

type Quote struct {
	Orders          []QuotedOrder `json:"orders"`
	Subtotal        int64         `json:"subtotal"`
	Discount        int64         `json:"discount"`
	Payable         int64         `json:"payable"`
	GrantApplicable bool          `json:"grantApplicable"`
}

type Prize struct {
	ID         kernel.UUID  `json:"id"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Value      int64        `json:"value"`
	ProviderID *kernel.UUID `json:"providerId,omitempty"`
	Weight     float64      `json:"weight"`
	Active     bool         `json:"active"`
	Color      string       `json:"color"`
}

type Grant struct {
	ID         kernel.UUID  `json:"id"`
	PrizeID    kernel.UUID  `json:"prizeId"`
	Name       string       `json:"name"`
	Type       string       `json:"type"`
	Value      int64        `json:"value"`
	ProviderID *kernel.UUID `json:"providerId,omitempty"`
	GrantedAt  time.Time    `json:"grantedAt"`
	RedeemedAt *time.Time   `json:"redeemedAt,omitempty"`
	BundleID   *kernel.UUID `json:"bundleId,omitempty"`
}

// Request mapping.

func (c Contact) input() commands.ContactInput {
	return commands.ContactInput{Name: c.Name, Phone: c.Phone, Address: c.Address}
}

func itemInputs(items []Item) []commands.ItemInput {
	if items == nil {
		return nil
	}
	out := make([]commands.ItemInput, 0, len(items))
	for _, i := range items {
		out = append(out, commands.ItemInput{
			Name:       i.Name,
			Quantity:   i.Quantity,
			UnitPrice:  i.UnitPrice,
			ProviderID: i.ProviderID,
		})
	}
	return out
}

func (o OrderPatch) input() commands.UpdateOrderInput {
	in := commands.UpdateOrderInput{
		Items:       itemInputs(o.Items),
		CourierID:   o.CourierID,
		DeliveryFee: o.DeliveryFee,
		Notes:       o.Notes,
	}
	if o.Contact != nil {
		contact := o.Contact.input()
		in.Contact = &contact
	}
	return in
}

func (c Cart) lineInputs() []commands.CartLineInput {
	out := make([]commands.CartLineInput, 0, len(c.Lines))
	for _, l := range c.Lines {
		out = append(out, commands.CartLineInput{
			ProviderID: l.ProviderID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  l.UnitPrice,
		})
	}
	return out
}

// cartLines converts the cart for the quote, which works on priced lines.
func (c Cart) cartLines() ([]services.CartLine, error) {
	out := make([]services.CartLine, 0, len(c.Lines))
	var errList []error
	for _, l := range c.Lines {
		price, err := kernel.NewMoney(l.UnitPrice)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		out = append(out, services.CartLine{
			ProviderID: l.ProviderID,
			Name:       l.Name,
			Quantity:   l.Quantity,
			UnitPrice:  price,
		})
	}
	return out, errors.Join(errList...)
}

func (d PrizeDefinition) definition() (prize.Definition, error) {
	t, err := prize.ParseType(d.Type)
	if err != nil {
		return prize.Definition{}, err
	}
	def := prize.Definition{Name: d.Name, Type: t, Value: d.Value, ProviderID: d.ProviderID}
	return def, def.Validate()
}

func (p PrizePatch) input() (commands.UpdatePrizeInput, error) {
	in := commands.UpdatePrizeInput{Weight: p.Weight, Color: p.Color, Active: p.Active}
	if p.Definition != nil {
		def, err := p.Definition.definition()
		if err != nil {
			return commands.UpdatePrizeInput{}, err
		}
		in.Definition = &def
	}
	return in, nil
}

// Response mapping.

func courierFromDomain(c *courier.Courier) Courier {
	return Courier{
		ID:            c.ID(),
		Name:          c.Name(),
		Phone:         c.Phone(),
		Available:     c.IsAvailable(),
		SupervisorIDs: nonNil(c.SupervisorIDs()),
	}
}

func courierFromReadModel(c queries.CourierResponse) Courier {
	return Courier{
		ID:            c.ID,
		Name:          c.Name,
		Phone:         c.Phone,
		Available:     c.Available,
		SupervisorIDs: nonNil(c.SupervisorIDs),
	}
}

func lineItemsFromReadModel(items []queries.LineItemResponse) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, i := range items {
		out = append(out, LineItem{
			Name:       i.Name,
			Quantity:   i.Quantity,
			UnitPrice:  i.UnitPrice.Int64(),
			Total:      i.Total.Int64(),
			ProviderID: i.ProviderID,
		})
	}
	return out
}

func orderFromReadModel(o queries.OrderResponse) Order {
	return Order{
		ID:                o.ID,
		Status:            o.Status.String(),
		Group:             o.Group,
		NextStatuses:      statusNames(o.NextStatuses),
		CustomerID:        o.CustomerID,
		ProviderID:        o.ProviderID,
		BundleID:          o.BundleID,
		GrantID:           o.GrantID,
		CourierID:         o.CourierID,
		SupervisorID:      o.SupervisorID,
		Contact:           Contact{Name: o.Contact.Name, Phone: o.Contact.Phone, Address: o.Contact.Address},
		Items:             lineItemsFromReadModel(o.Items),
		Subtotal:          o.Subtotal.Int64(),
		Discount:          o.Discount.Int64(),
		DeliveryFee:       o.DeliveryFee.Int64(),
		DeliveryFeeWaived: o.DeliveryFeeWaived,
		Payable:           o.Payable.Int64(),
		Origin:            string(o.Origin),
		CanReject:         o.CanReject,
		IsEdited:          o.IsEdited,
		Notes:             o.Notes,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
	}
}

func orderFromDomain(o *order.Order) Order {
	return orderFromReadModel(queries.NewOrderResponse(o))
}

func bundleFromDomain(b *commands.Bundle) Bundle {
	out := Bundle{ID: b.ID, Orders: make([]Order, 0, len(b.Orders))}
	for _, o := range b.Orders {
		out.Orders = append(out.Orders, orderFromDomain(o))
	}
	if b.Grant != nil {
		id := b.Grant.ID()
		out.GrantID = &id
	}
	return out
}

func quoteFromReadModel(q queries.QuoteResponse) Quote {
	out := Quote{
		Orders:          make([]QuotedOrder, 0, len(q.Orders)),
		Subtotal:        q.Subtotal.Int64(),
		Discount:        q.Discount.Int64(),
		Payable:         q.Payable.Int64(),
		GrantApplicable: q.GrantApplicable,
	}
	for _, o := range q.Orders {
		out.Orders = append(out.Orders, QuotedOrder{
			ProviderID:        o.ProviderID,
			Items:             lineItemsFromReadModel(o.Items),
			Subtotal:          o.Subtotal.Int64(),
			Discount:          o.Discount.Int64(),
			DeliveryFee:       o.DeliveryFee.Int64(),
			DeliveryFeeWaived: o.DeliveryFeeWaived,
			Payable:           o.Payable.Int64(),
		})
	}
	return out
}

func prizeFromDomain(p *prize.Prize) Prize {
	def := p.Definition()
	return Prize{
		ID:         p.ID(),
		Name:       def.Name,
		Type:       string(def.Type),
		Value:      def.Value,
		ProviderID: def.ProviderID,
		Weight:     p.Weight(),
		Active:     p.IsActive(),
		Color:      p.Color(),
	}
}

func prizeFromReadModel(p queries.PrizeResponse) Prize {
	return Prize{
		ID:         p.ID,
		Name:       p.Name,
		Type:       p.Type,
		Value:      p.Value,
		ProviderID: p.ProviderID,
		Weight:     p.Weight,
		Active:     p.Active,
		Color:      p.Color,
	}
}

func grantFromDomain(g *prize.Grant) Grant {
	def := g.Definition()
	return Grant{
		ID:         g.ID(),
		PrizeID:    g.PrizeID(),
		Name:       def.Name,
		Type:       string(def.Type),
		Value:      def.Value,
		ProviderID: def.ProviderID,
		GrantedAt:  g.GrantedAt(),
		RedeemedAt: g.RedeemedAt(),
		BundleID:   g.BundleID(),
	}
}

func grantFromReadModel(g queries.GrantResponse) Grant {
	return Grant{
		ID:         g.ID,
		PrizeID:    g.PrizeID,
		Name:       g.Name,
		Type:       g.Type,
		Value:      g.Value,
		ProviderID: g.ProviderID,
		GrantedAt:  g.GrantedAt,
		RedeemedAt: g.RedeemedAt,
		BundleID:   g.BundleID,
	}
}

func statusNames(statuses []order.Status) []string {
	out := make([]string, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, s.String())
	}
	return out
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
