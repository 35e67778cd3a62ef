// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is one row of the orders table. Status is stored by its wire name so
// the table stays readable for ad-hoc queries.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        *uuid.UUID `gorm:"type:uuid;index"`
	ProviderID        *uuid.UUID `gorm:"type:uuid;index"`
	BundleID          *uuid.UUID `gorm:"type:uuid;index"`
	GrantID           *uuid.UUID `gorm:"type:uuid"`
	ContactName       string
	ContactPhone      string
	ContactAddress    string
	DeliveryFee       int64
	DeliveryFeeWaived bool
	Discount          int64
	Origin            string
	Notes             string
	Status            string     `gorm:"index"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`
	SupervisorID      *uuid.UUID `gorm:"type:uuid;index"`
	IsEdited          bool
	CreatedAt         time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`

	Items []OrderItemDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one line item. Position keeps the cart order stable.
type OrderItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey;autoIncrement:false"`
	Name       string
	Quantity   int
	UnitPrice  int64
	ProviderID *uuid.UUID `gorm:"type:uuid"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	contact := o.Contact()
	items := o.Items()

	dto := OrderDTO{
		ID:                o.ID().Bytes(),
		CustomerID:        fromID(o.CustomerID()),
		ProviderID:        fromID(o.ProviderID()),
		BundleID:          fromID(o.BundleID()),
		GrantID:           fromID(o.GrantID()),
		ContactName:       contact.Name(),
		ContactPhone:      contact.Phone(),
		ContactAddress:    contact.Address(),
		DeliveryFee:       o.DeliveryFee().Int64(),
		DeliveryFeeWaived: o.DeliveryFeeWaived(),
		Discount:          o.Discount().Int64(),
		Origin:            string(o.Origin()),
		Notes:             o.Notes(),
		Status:            o.Status().String(),
		CourierID:         fromID(o.Courier()),
		SupervisorID:      fromID(o.Supervisor()),
		IsEdited:          o.IsEdited(),
		CreatedAt:         o.CreatedAt(),
		UpdatedAt:         o.UpdatedAt(),
		Items:             make([]OrderItemDTO, 0, len(items)),
	}

	for i, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			OrderID:    dto.ID,
			Position:   i,
			Name:       item.Name(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice().Int64(),
			ProviderID: fromID(item.ProviderID()),
		})
	}

	return dto
}

// toDomain rebuilds an order from a row and its items sorted by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	contact, err := order.NewContact(dto.ContactName, dto.ContactPhone, dto.ContactAddress)
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, row := range dto.Items {
		providerID, idErr := toID(row.ProviderID)
		if idErr != nil {
			return nil, idErr
		}
		item, itemErr := order.NewLineItem(row.Name, row.Quantity, kernel.Money(row.UnitPrice), providerID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	var ids [6]*kernel.UUID
	for i, raw := range []*uuid.UUID{
		dto.CustomerID, dto.ProviderID, dto.BundleID, dto.GrantID, dto.CourierID, dto.SupervisorID,
	} {
		if ids[i], err = toID(raw); err != nil {
			return nil, err
		}
	}

	return order.RestoreOrder(order.Snapshot{
		Draft: order.Draft{
			CustomerID:        ids[0],
			ProviderID:        ids[1],
			BundleID:          ids[2],
			GrantID:           ids[3],
			Contact:           contact,
			Items:             items,
			DeliveryFee:       kernel.Money(dto.DeliveryFee),
			DeliveryFeeWaived: dto.DeliveryFeeWaived,
			Discount:          kernel.Money(dto.Discount),
			Origin:            order.Origin(dto.Origin),
			Notes:             dto.Notes,
		},
		ID:           id,
		Status:       status,
		CourierID:    ids[4],
		SupervisorID: ids[5],
		IsEdited:     dto.IsEdited,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

func fromID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil // absent optional reference
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
