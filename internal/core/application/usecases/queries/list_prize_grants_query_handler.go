package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListPrizeGrantsQueryHandler struct {
	db *gorm.DB
}

func NewListPrizeGrantsQueryHandler(db *gorm.DB) ListPrizeGrantsQueryHandler {
	return ListPrizeGrantsQueryHandler{db: db}
}

// Handle returns the actor's grants, newest first.
func (h ListPrizeGrantsQueryHandler) Handle(ctx context.Context, query ListPrizeGrantsQuery) ([]GrantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT id, prize_id, name, type, value, provider_id, granted_at, redeemed_at, bundle_id
		FROM prize_grants
		WHERE user_id = ?`
	if query.UnredeemedOnly() {
		sql += " AND redeemed_at IS NULL"
	}
	sql += " ORDER BY granted_at DESC, id"

	var rows []struct {
		ID         uuid.UUID
		PrizeID    uuid.UUID
		Name       string
		Type       string
		Value      int64
		ProviderID *uuid.UUID
		GrantedAt  time.Time
		RedeemedAt *time.Time
		BundleID   *uuid.UUID
	}
	if err := h.db.WithContext(ctx).Raw(sql, query.Actor().ID().Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	grants := make([]GrantResponse, 0, len(rows))
	for _, row := range rows {
		id, err := kernel.UUIDFromBytes(row.ID[:])
		if err != nil {
			return nil, err
		}
		prizeID, err := kernel.UUIDFromBytes(row.PrizeID[:])
		if err != nil {
			return nil, err
		}
		providerID, err := optionalID(row.ProviderID)
		if err != nil {
			return nil, err
		}
		bundleID, err := optionalID(row.BundleID)
		if err != nil {
			return nil, err
		}

		grants = append(grants, GrantResponse{
			ID:         id,
			PrizeID:    prizeID,
			Name:       row.Name,
			Type:       row.Type,
			Value:      row.Value,
			ProviderID: providerID,
			GrantedAt:  row.GrantedAt,
			RedeemedAt: row.RedeemedAt,
			BundleID:   bundleID,
		})
	}

	return grants, nil
}
