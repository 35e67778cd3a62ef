// Package prizerepo maps the prize table and won grants to the prizes and
// prize_grants tables.
package prizerepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/prize"

	"github.com/google/uuid"
)

type PrizeDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Type       string     `gorm:"type:varchar(32);not null"`
	Value      int64      `gorm:"not null"`
	ProviderID *uuid.UUID `gorm:"type:uuid"`
	Weight     float64    `gorm:"not null"`
	Active     bool       `gorm:"not null"`
	Color      string     `gorm:"type:varchar(32);not null"`
	CreatedAt  time.Time
}

func (PrizeDTO) TableName() string {
	return "prizes"
}

// GrantDTO stores a won prize together with a copy of the definition it was won with.
type GrantDTO struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PrizeID    uuid.UUID  `gorm:"type:uuid;not null"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name       string     `gorm:"type:varchar(255);not null"`
	Type       string     `gorm:"type:varchar(32);not null"`
	Value      int64      `gorm:"not null"`
	ProviderID *uuid.UUID `gorm:"type:uuid"`
	GrantedAt  time.Time
	RedeemedAt *time.Time
	BundleID   *uuid.UUID `gorm:"type:uuid"`
}

func (GrantDTO) TableName() string {
	return "prize_grants"
}

func prizeFromDomain(p *prize.Prize) PrizeDTO {
	def := p.Definition()
	return PrizeDTO{
		ID:         p.ID().Bytes(),
		Name:       def.Name,
		Type:       string(def.Type),
		Value:      def.Value,
		ProviderID: fromID(def.ProviderID),
		Weight:     p.Weight(),
		Active:     p.IsActive(),
		Color:      p.Color(),
	}
}

// prizeToDomain rebuilds a prize from its row.
func prizeToDomain(dto PrizeDTO) (*prize.Prize, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	def, err := definition(dto.Name, dto.Type, dto.Value, dto.ProviderID)
	if err != nil {
		return nil, err
	}

	return prize.RestorePrize(id, def, dto.Weight, dto.Active, dto.Color)
}

func grantFromDomain(g *prize.Grant) GrantDTO {
	def := g.Definition()
	return GrantDTO{
		ID:         g.ID().Bytes(),
		PrizeID:    g.PrizeID().Bytes(),
		UserID:     g.UserID().Bytes(),
		Name:       def.Name,
		Type:       string(def.Type),
		Value:      def.Value,
		ProviderID: fromID(def.ProviderID),
		GrantedAt:  g.GrantedAt(),
		RedeemedAt: g.RedeemedAt(),
		BundleID:   fromID(g.BundleID()),
	}
}

// grantToDomain rebuilds a grant from its row.
func grantToDomain(dto GrantDTO) (*prize.Grant, error) {
	var ids [3]kernel.UUID
	for i, raw := range []uuid.UUID{dto.ID, dto.PrizeID, dto.UserID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}

	def, err := definition(dto.Name, dto.Type, dto.Value, dto.ProviderID)
	if err != nil {
		return nil, err
	}

	bundleID, err := toID(dto.BundleID)
	if err != nil {
		return nil, err
	}

	return prize.RestoreGrant(ids[0], ids[1], ids[2], def, dto.GrantedAt, dto.RedeemedAt, bundleID)
}

func definition(name, rawType string, value int64, rawProviderID *uuid.UUID) (prize.Definition, error) {
	t, err := prize.ParseType(rawType)
	if err != nil {
		return prize.Definition{}, err
	}

	providerID, err := toID(rawProviderID)
	if err != nil {
		return prize.Definition{}, err
	}

	return prize.Definition{Name: name, Type: t, Value: value, ProviderID: providerID}, nil
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
