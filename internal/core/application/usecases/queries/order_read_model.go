// Package queries contains read operations. Handlers read the tables directly
// with raw SQL and return read models; they never write and never open a unit
// of work. Scope filtering is delegated to services.ScopeResolver so reads and
// writes agree on what an actor may see.
package queries

import (
	"context"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderResponse is the read model of an order with every derived amount
// precomputed.
type OrderResponse struct {
	ID                kernel.UUID
	Status            order.Status
	Group             string
	NextStatuses      []order.Status
	CustomerID        *kernel.UUID
	ProviderID        *kernel.UUID
	BundleID          *kernel.UUID
	GrantID           *kernel.UUID
	CourierID         *kernel.UUID
	SupervisorID      *kernel.UUID
	Contact           ContactResponse
	Items             []LineItemResponse
	Subtotal          kernel.Money
	Discount          kernel.Money
	DeliveryFee       kernel.Money
	DeliveryFeeWaived bool
	Payable           kernel.Money
	Origin            order.Origin
	CanReject         bool
	IsEdited          bool
	Notes             string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ContactResponse struct {
	Name    string
	Phone   string
	Address string
}

type LineItemResponse struct {
	Name       string
	Quantity   int
	UnitPrice  kernel.Money
	Total      kernel.Money
	ProviderID *kernel.UUID
}

// NewOrderResponse maps an aggregate to its read model. Command results are
// returned through it too, so reads and writes render orders identically.
func NewOrderResponse(o *order.Order) OrderResponse {
	contact := o.Contact()
	return OrderResponse{
		ID:                o.ID(),
		Status:            o.Status(),
		Group:             o.Status().Group(),
		NextStatuses:      o.Status().NextStatuses(),
		CustomerID:        o.CustomerID(),
		ProviderID:        o.ProviderID(),
		BundleID:          o.BundleID(),
		GrantID:           o.GrantID(),
		CourierID:         o.Courier(),
		SupervisorID:      o.Supervisor(),
		Contact:           ContactResponse{Name: contact.Name(), Phone: contact.Phone(), Address: contact.Address()},
		Items:             NewLineItemResponses(o.Items()),
		Subtotal:          o.Subtotal(),
		Discount:          o.Discount(),
		DeliveryFee:       o.EffectiveDeliveryFee(),
		DeliveryFeeWaived: o.DeliveryFeeWaived(),
		Payable:           o.Payable(),
		Origin:            o.Origin(),
		CanReject:         o.CanReject(),
		IsEdited:          o.IsEdited(),
		Notes:             o.Notes(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
	}
}

func NewLineItemResponses(items []order.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			Total:      item.Total(),
			ProviderID: item.ProviderID(),
		})
	}
	return out
}

type orderRow struct {
	ID                uuid.UUID
	CustomerID        *uuid.UUID
	ProviderID        *uuid.UUID
	BundleID          *uuid.UUID
	GrantID           *uuid.UUID
	ContactName       string
	ContactPhone      string
	ContactAddress    string
	DeliveryFee       int64
	DeliveryFeeWaived bool
	Discount          int64
	Origin            string
	Notes             string
	Status            string
	CourierID         *uuid.UUID
	SupervisorID      *uuid.UUID
	IsEdited          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type itemRow struct {
	OrderID    uuid.UUID
	Name       string
	Quantity   int
	UnitPrice  int64
	ProviderID *uuid.UUID
}

const selectOrders = `
	SELECT
		id, customer_id, provider_id, bundle_id, grant_id,
		contact_name, contact_phone, contact_address,
		delivery_fee, delivery_fee_waived, discount,
		origin, notes, status, courier_id, supervisor_id,
		is_edited, created_at, updated_at
	FROM orders`

// loadOrders runs selectOrders with the given condition and attaches line items.
func loadOrders(ctx context.Context, db *gorm.DB, where string, args ...any) ([]*order.Order, error) {
	var rows []orderRow
	if err := db.WithContext(ctx).
		Raw(selectOrders+" WHERE "+where+" ORDER BY created_at DESC, id", args...).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []*order.Order{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var items []itemRow
	if err := db.WithContext(ctx).Raw(`
		SELECT order_id, name, quantity, unit_price, provider_id
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Scan(&items).Error; err != nil {
		return nil, err
	}

	itemsByOrder := make(map[uuid.UUID][]itemRow, len(rows))
	for _, item := range items {
		itemsByOrder[item.OrderID] = append(itemsByOrder[item.OrderID], item)
	}

	orders := make([]*order.Order, 0, len(rows))
	for _, row := range rows {
		o, err := restoreOrder(row, itemsByOrder[row.ID])
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// filterClause renders an OrderFilter as a WHERE condition.
func filterClause(f services.OrderFilter) (string, []any) {
	conds := []string{"TRUE"}
	var args []any

	if f.Unattributed {
		conds = append(conds, "supervisor_id IS NULL")
	}
	for column, id := range map[string]*kernel.UUID{
		"supervisor_id": f.SupervisorID,
		"courier_id":    f.CourierID,
		"provider_id":   f.ProviderID,
		"customer_id":   f.CustomerID,
	} {
		if id != nil {
			conds = append(conds, column+" = ?")
			args = append(args, id.Bytes())
		}
	}
	if len(f.Statuses) > 0 {
		conds = append(conds, "status IN ?")
		args = append(args, statusNames(f.Statuses))
	}
	if len(f.ExcludeStatuses) > 0 {
		conds = append(conds, "status NOT IN ?")
		args = append(args, statusNames(f.ExcludeStatuses))
	}

	return strings.Join(conds, " AND "), args
}

func statusNames(statuses []order.Status) []string {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}
	return names
}

func restoreOrder(row orderRow, items []itemRow) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	contact, err := order.NewContact(row.ContactName, row.ContactPhone, row.ContactAddress)
	if err != nil {
		return nil, err
	}

	lineItems := make([]order.LineItem, 0, len(items))
	for _, item := range items {
		providerID, idErr := optionalID(item.ProviderID)
		if idErr != nil {
			return nil, idErr
		}
		li, itemErr := order.NewLineItem(item.Name, item.Quantity, kernel.Money(item.UnitPrice), providerID)
		if itemErr != nil {
			return nil, itemErr
		}
		lineItems = append(lineItems, li)
	}

	refs := make([]*kernel.UUID, 6)
	for i, raw := range []*uuid.UUID{
		row.CustomerID, row.ProviderID, row.BundleID, row.GrantID, row.CourierID, row.SupervisorID,
	} {
		if refs[i], err = optionalID(raw); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.Snapshot{
		Draft: order.Draft{
			CustomerID:        refs[0],
			ProviderID:        refs[1],
			BundleID:          refs[2],
			GrantID:           refs[3],
			Contact:           contact,
			Items:             lineItems,
			DeliveryFee:       kernel.Money(row.DeliveryFee),
			DeliveryFeeWaived: row.DeliveryFeeWaived,
			Discount:          kernel.Money(row.Discount),
			Origin:            order.Origin(row.Origin),
			Notes:             row.Notes,
		},
		ID:           id,
		Status:       status,
		CourierID:    refs[4],
		SupervisorID: refs[5],
		IsEdited:     row.IsEdited,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	})
}

func optionalID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent optional reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
