package queries

import (
	"context"

	"marketplace/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler translates the actor's scope into SQL, newest first.
type ListOrdersQueryHandler struct {
	db    *gorm.DB
	scope services.ScopeResolver
}

func NewListOrdersQueryHandler(db *gorm.DB, scope services.ScopeResolver) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, scope: scope}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	filter, err := h.scope.OrderFilter(query.Actor(), query.View())
	if err != nil {
		return nil, err
	}

	where, args := filterClause(filter)
	orders, err := loadOrders(ctx, h.db, where, args...)
	if err != nil {
		return nil, err
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, NewOrderResponse(o))
	}

	return response, nil
}
