package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/courier"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListCouriersQueryHandler loads the registry and filters it through the scope
// resolver, so visibility rules live in one place.
//
// Example:
//
//	handler := NewListCouriersQueryHandler(db, services.NewScopeResolver())
//	query, _ := NewListCouriersQuery(actor, nil, false)
//
//	couriers, err := handler.Handle(ctx, query)
type ListCouriersQueryHandler struct {
	db    *gorm.DB
	scope services.ScopeResolver
}

func NewListCouriersQueryHandler(db *gorm.DB, scope services.ScopeResolver) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db, scope: scope}
}

// Handle returns the visible couriers sorted by name. Customers and providers
// have no courier scope and are refused.
func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actor := query.Actor()
	if !actor.Role().IsManager() && actor.Role() != kernel.RoleCourier {
		return nil, errs.NewForbiddenError(actor.String(), "list couriers")
	}

	couriers, err := h.load(ctx)
	if err != nil {
		return nil, err
	}

	opts := services.ScopeOptions{IncludeUnavailable: query.Manage()}
	response := make([]CourierResponse, 0, len(couriers))
	for _, c := range couriers {
		if !h.scope.CanSeeCourier(actor, c, opts) {
			continue
		}
		if available := query.Available(); available != nil && c.IsAvailable() != *available {
			continue
		}
		response = append(response, CourierResponse{
			ID:            c.ID(),
			Name:          c.Name(),
			Phone:         c.Phone(),
			Available:     c.IsAvailable(),
			SupervisorIDs: c.SupervisorIDs(),
		})
	}

	return response, nil
}

func (h ListCouriersQueryHandler) load(ctx context.Context) ([]*courier.Courier, error) {
	assignments, err := h.loadAssignments(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			phone,
			available,
			created_at
		FROM couriers
		WHERE deleted_at IS NULL
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	couriers := make([]*courier.Courier, 0)
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			phone     string
			available bool
			createdAt time.Time
		)
		if err = rows.Scan(&id, &name, &phone, &available, &createdAt); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		c, restoreErr := courier.RestoreCourier(
			courierID, name, phone, available, createdAt, nil, assignments[id],
		)
		if restoreErr != nil {
			return nil, restoreErr
		}
		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}

func (h ListCouriersQueryHandler) loadAssignments(ctx context.Context) (map[uuid.UUID][]*courier.Assignment, error) {
	var rows []struct {
		ID           uuid.UUID
		CourierID    uuid.UUID
		SupervisorID uuid.UUID
		AssignedAt   time.Time
	}
	if err := h.db.WithContext(ctx).Raw(`
		SELECT id, courier_id, supervisor_id, assigned_at
		FROM courier_assignments
		ORDER BY assigned_at, id
	`).Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[uuid.UUID][]*courier.Assignment)
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		supervisorID, err := kernel.UUIDFromBytes(row.SupervisorID[:])
		if err != nil {
			return nil, err
		}
		a, err := courier.RestoreAssignment(id, supervisorID, row.AssignedAt)
		if err != nil {
			return nil, err
		}
		out[row.CourierID] = append(out[row.CourierID], a)
	}

	return out, nil
}
