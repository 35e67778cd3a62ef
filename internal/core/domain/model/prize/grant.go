package prize

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// ErrGrantIsNotConstructed is returned when using a Grant built outside its constructors.
var ErrGrantIsNotConstructed = errors.New("Grant must be created via NewGrant constructor")

// Grant is a user's won instance of a prize. It snapshots the prize definition,
// belongs to exactly one user and is redeemed at most once, against a bundle.
type Grant struct {
	id         kernel.UUID
	prizeID    kernel.UUID
	userID     kernel.UUID
	definition Definition
	grantedAt  time.Time
	redeemedAt *time.Time
	bundleID   *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGrant records that userID won p at now.
func NewGrant(id kernel.UUID, p *Prize, userID kernel.UUID, now time.Time) (*Grant, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return RestoreGrant(id, p.ID(), userID, p.Definition(), now, nil, nil)
}

// RestoreGrant rebuilds a persisted grant.
func RestoreGrant(
	id, prizeID, userID kernel.UUID,
	def Definition,
	grantedAt time.Time,
	redeemedAt *time.Time,
	bundleID *kernel.UUID,
) (*Grant, error) {
	g := &Grant{
		id:         id,
		prizeID:    prizeID,
		userID:     userID,
		definition: def,
		grantedAt:  grantedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(id.Validate(), prizeID.Validate(), userID.Validate(), def.Validate()); err != nil {
		return nil, err
	}
	if (redeemedAt == nil) != (bundleID == nil) {
		return nil, errs.NewValueIsInvalidError("a redeemed grant must carry its bundle")
	}
	if redeemedAt != nil {
		at := redeemedAt.UTC()
		bid := *bundleID
		g.redeemedAt = &at
		g.bundleID = &bid
	}

	return g, nil
}

func (g *Grant) Validate() error {
	if g == nil {
		return ErrGrantIsNotConstructed
	}
	return g.guard.Validate(ErrGrantIsNotConstructed)
}

func (g *Grant) ID() kernel.UUID {
	return g.id
}

func (g *Grant) PrizeID() kernel.UUID {
	return g.prizeID
}

func (g *Grant) UserID() kernel.UUID {
	return g.userID
}

// Definition is the prize as it was when the grant was won.
func (g *Grant) Definition() Definition {
	return g.definition
}

func (g *Grant) GrantedAt() time.Time {
	return g.grantedAt
}

func (g *Grant) RedeemedAt() *time.Time {
	return g.redeemedAt
}

// BundleID is the checkout that spent the grant.
func (g *Grant) BundleID() *kernel.UUID {
	return g.bundleID
}

func (g *Grant) IsRedeemed() bool {
	return g.redeemedAt != nil
}

// BelongsTo reports whether userID owns the grant.
func (g *Grant) BelongsTo(userID kernel.UUID) bool {
	return g.userID.IsEqual(userID)
}

// Redeem spends the grant on bundleID. A second redemption is a conflict.
func (g *Grant) Redeem(bundleID kernel.UUID, now time.Time) error {
	if err := bundleID.Validate(); err != nil {
		return err
	}
	if g.IsRedeemed() {
		return errs.NewConflictError("prize grant", "redeemed", "redeem")
	}

	at := now.UTC()
	g.redeemedAt = &at
	g.bundleID = &bundleID
	return nil
}
