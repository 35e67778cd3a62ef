package prizerepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormPrizeRepository implements ports.PrizeRepository using GORM.
type GormPrizeRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormPrizeRepository(db *gorm.DB, tracker aggregateTracker) *GormPrizeRepository {
	return &GormPrizeRepository{db: db, tracker: tracker}
}

func (r *GormPrizeRepository) Add(ctx context.Context, p *prize.Prize) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := prizeFromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *GormPrizeRepository) Update(ctx context.Context, p *prize.Prize) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := prizeFromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&PrizeDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "type", "value", "provider_id", "weight", "active", "color").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("prize", p.ID().String())
	}

	r.tracker.TrackAggregate(p.ID(), p)
	return nil
}

func (r *GormPrizeRepository) Get(ctx context.Context, id kernel.UUID) (*prize.Prize, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PrizeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("prize", id.String())
		}
		return nil, err
	}

	return prizeToDomain(dto)
}

// GetAll returns the whole table, inactive prizes included, in creation order.
func (r *GormPrizeRepository) GetAll(ctx context.Context) ([]*prize.Prize, error) {
	var dtos []PrizeDTO
	if err := r.db.WithContext(ctx).Order("created_at, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	prizes := make([]*prize.Prize, 0, len(dtos))
	for _, dto := range dtos {
		p, err := prizeToDomain(dto)
		if err != nil {
			return nil, err
		}
		prizes = append(prizes, p)
	}

	return prizes, nil
}

// GormGrantRepository implements ports.GrantRepository using GORM.
type GormGrantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormGrantRepository(db *gorm.DB, tracker aggregateTracker) *GormGrantRepository {
	return &GormGrantRepository{db: db, tracker: tracker}
}

// Add stores a freshly won grant. Tracking it makes the unit of work publish
// prize.granted after commit.
func (r *GormGrantRepository) Add(ctx context.Context, g *prize.Grant) error {
	if err := g.Validate(); err != nil {
		return err
	}

	dto := grantFromDomain(g)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(g.ID(), g)
	return nil
}

// Get locks the row for the rest of the transaction.
func (r *GormGrantRepository) Get(ctx context.Context, id kernel.UUID) (*prize.Grant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto GrantDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("prize grant", id.String())
		}
		return nil, err
	}

	return grantToDomain(dto)
}

// Redeem marks the stored grant redeemed only if it still is not, so a grant
// can never be spent twice even without the row lock.
func (r *GormGrantRepository) Redeem(ctx context.Context, g *prize.Grant) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if !g.IsRedeemed() {
		return errs.NewValueIsInvalidError("grant is not redeemed")
	}

	result := r.db.WithContext(ctx).
		Model(&GrantDTO{}).
		Where("id = ? AND redeemed_at IS NULL", g.ID().Bytes()).
		Updates(map[string]any{
			"redeemed_at": *g.RedeemedAt(),
			"bundle_id":   g.BundleID().Bytes(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("prize grant", "redeemed", "redeem")
	}

	return nil
}

// GetByUser lists a user's grants, newest first.
func (r *GormGrantRepository) GetByUser(ctx context.Context, userID kernel.UUID) ([]*prize.Grant, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []GrantDTO
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Order("granted_at DESC, id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	grants := make([]*prize.Grant, 0, len(dtos))
	for _, dto := range dtos {
		g, err := grantToDomain(dto)
		if err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}

	return grants, nil
}
