package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPrizesQueryHandler struct {
	db *gorm.DB
}

func NewListPrizesQueryHandler(db *gorm.DB) ListPrizesQueryHandler {
	return ListPrizesQueryHandler{db: db}
}

// Handle returns prizes in creation order, the order the wheel is drawn in.
func (h ListPrizesQueryHandler) Handle(ctx context.Context, query ListPrizesQuery) ([]PrizeResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, name, type, value, provider_id, weight, active, color
		FROM prizes`
	if query.Actor().Role() != kernel.RoleOwner {
		sql += " WHERE active"
	}
	sql += " ORDER BY created_at, id"

	var rows []struct {
		ID         uuid.UUID
		Name       string
		Type       string
		Value      int64
		ProviderID *uuid.UUID
		Weight     float64
		Active     bool
		Color      string
	}
	if err := h.db.WithContext(ctx).Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}

	prizes := make([]PrizeResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		providerID, err := optionalID(row.ProviderID)
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, PrizeResponse{
			ID:         id,
			Name:       row.Name,
			Type:       row.Type,
			Value:      row.Value,
			ProviderID: providerID,
			Weight:     row.Weight,
			Active:     row.Active,
			Color:      row.Color,
		})
	}

	return prizes, nil
}
