package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db    *gorm.DB
	scope services.ScopeResolver
}

func NewGetOrderQueryHandler(db *gorm.DB, scope services.ScopeResolver) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, scope: scope}
}

// Handle returns errs.ObjectNotFoundError for unknown ids and errs.ForbiddenError
// for orders outside the actor's scope.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db, "id = ?", query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	o := orders[0]
	if !h.scope.CanSeeOrder(query.Actor(), o) {
		return OrderResponse{}, errs.NewForbiddenError(query.Actor().String(), "view order "+o.ID().String())
	}

	return NewOrderResponse(o), nil
}
