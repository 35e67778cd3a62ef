package queries

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteQueryHandler struct {
	db       *gorm.DB
	splitter services.BundleSplitter
}

func NewQuoteQueryHandler(db *gorm.DB, splitter services.BundleSplitter) QuoteQueryHandler {
	return QuoteQueryHandler{db: db, splitter: splitter}
}

// Handle applies the same grant checks as checkout: unknown grants are not found,
// foreign grants are forbidden and spent grants conflict.
func (h QuoteQueryHandler) Handle(ctx context.Context, query QuoteQuery) (QuoteResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteResponse{}, err
	}

	var grant *prize.Grant
	if grantID := query.GrantID(); grantID != nil {
		g, err := h.loadGrant(ctx, *grantID)
		if err != nil {
			return QuoteResponse{}, err
		}
		if !g.BelongsTo(query.Actor().ID()) {
			return QuoteResponse{}, errs.NewForbiddenError(query.Actor().String(), "spend grant "+grantID.String())
		}
		if g.IsRedeemed() {
			return QuoteResponse{}, errs.NewConflictError("prize grant", "redeemed", "redeem")
		}
		grant = g
	}

	plan, err := h.splitter.Plan(query.Lines(), grant)
	if err != nil {
		return QuoteResponse{}, err
	}

	response := QuoteResponse{
		Orders:          make([]QuotedOrder, 0, len(plan.Orders)),
		Subtotal:        plan.Subtotal(),
		Discount:        plan.Discount(),
		Payable:         plan.Payable(),
		GrantApplicable: plan.GrantApplicable,
	}
	for _, planned := range plan.Orders {
		response.Orders = append(response.Orders, QuotedOrder{
			ProviderID:        planned.ProviderID,
			Items:             NewLineItemResponses(planned.Items),
			Subtotal:          planned.Subtotal,
			Discount:          planned.Discount,
			DeliveryFee:       planned.DeliveryFee,
			DeliveryFeeWaived: planned.DeliveryFeeWaived,
			Payable:           planned.Payable(),
		})
	}

	return response, nil
}

func (h QuoteQueryHandler) loadGrant(ctx context.Context, id kernel.UUID) (*prize.Grant, error) {
	var row struct {
		ID         uuid.UUID
		PrizeID    uuid.UUID
		UserID     uuid.UUID
		Name       string
		Type       string
		Value      int64
		ProviderID *uuid.UUID
		GrantedAt  time.Time
		RedeemedAt *time.Time
		BundleID   *uuid.UUID
	}
	result := h.db.WithContext(ctx).Raw(`
		SELECT id, prize_id, user_id, name, type, value, provider_id, granted_at, redeemed_at, bundle_id
		FROM prize_grants
		WHERE id = ?
	`, id.Bytes()).Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("prize grant", id.String())
	}

	prizeID, err := kernel.UUIDFromBytes(row.PrizeID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(row.UserID[:])
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
	grantType, err := prize.ParseType(row.Type)
	if err != nil {
		return nil, err
	}

	return prize.RestoreGrant(id, prizeID, userID, prize.Definition{
		Name:       row.Name,
		Type:       grantType,
		Value:      row.Value,
		ProviderID: providerID,
	}, row.GrantedAt, row.RedeemedAt, bundleID)
}
