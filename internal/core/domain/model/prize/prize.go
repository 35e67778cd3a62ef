package prize

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	// ErrPrizeIsNotConstructed is returned when using a Prize built outside its constructors.
	ErrPrizeIsNotConstructed = errors.New("Prize must be created via NewPrize constructor")

	// ErrNoPrizesConfigured is returned by a spin when no active prize carries weight.
	ErrNoPrizesConfigured = errors.New("no prizes configured")
)

// Type is the kind of reward a prize grants.
type Type string

const (
	TypePercentDiscount Type = "percent_discount"
	TypeFlatDiscount    Type = "flat_discount"
	TypeFreeDelivery    Type = "free_delivery"
)

// ParseType maps a wire name to a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

func (t Type) Validate() error {
	switch t {
	case TypePercentDiscount, TypeFlatDiscount, TypeFreeDelivery:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("prize type", fmt.Errorf("%q is not a prize type", string(t)))
}

// Definition is the reward part of a prize: what it does and where it applies.
// Grants copy it at win time so later edits never change a won instance.
type Definition struct {
	Name       string
	Type       Type
	Value      int64
	ProviderID *kernel.UUID
}

// IsGlobal reports whether the reward applies to any provider.
func (d Definition) IsGlobal() bool {
	return d.ProviderID == nil
}

// Validate checks the value against the type: percentages are 1..100, flat amounts
// are positive minor units and free delivery carries no value.
func (d Definition) Validate() error {
	var errList []error

	if strings.TrimSpace(d.Name) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("prize name"))
	}
	if err := d.Type.Validate(); err != nil {
		errList = append(errList, err)
	}

	switch d.Type {
	case TypePercentDiscount:
		if d.Value < 1 || d.Value > 100 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("percent", d.Value, 1, 100))
		}
	case TypeFlatDiscount:
		if d.Value <= 0 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("flat amount", d.Value, 1, "unbounded"))
		}
	case TypeFreeDelivery:
		if d.Value != 0 {
			errList = append(errList, errs.NewValueIsOutOfRangeError("free delivery value", d.Value, 0, 0))
		}
	}

	if d.ProviderID != nil {
		if err := d.ProviderID.Validate(); err != nil {
			errList = append(errList, err)
		}
	}

	return errors.Join(errList...)
}

// Prize is one row of the operator-configured prize table.
//
// Business rules:
//   - Weight is non-negative; a zero weight keeps the prize listed but never drawn
//   - Deactivating or editing a prize never touches grants already won
type Prize struct {
	id         kernel.UUID
	definition Definition
	weight     float64
	active     bool
	color      string

	guard guard.ConstructorGuard
}

// NewPrize creates an active prize.
func NewPrize(id kernel.UUID, def Definition, weight float64, color string) (*Prize, error) {
	return RestorePrize(id, def, weight, true, color)
}

// RestorePrize rebuilds a persisted prize.
func RestorePrize(id kernel.UUID, def Definition, weight float64, active bool, color string) (*Prize, error) {
	p := &Prize{
		active: active,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setDefinition(def),
		p.setWeight(weight),
		p.setColor(color),
	); err != nil {
		return nil, err
	}

	return p, nil
}

func (p *Prize) Validate() error {
	if p == nil {
		return ErrPrizeIsNotConstructed
	}
	return p.guard.Validate(ErrPrizeIsNotConstructed)
}

func (p *Prize) ID() kernel.UUID {
	return p.id
}

func (p *Prize) Definition() Definition {
	return p.definition
}

func (p *Prize) Weight() float64 {
	return p.weight
}

func (p *Prize) IsActive() bool {
	return p.active
}

func (p *Prize) Color() string {
	return p.color
}

// IsDrawable reports whether the prize takes part in spins.
func (p *Prize) IsDrawable() bool {
	return p.active && p.weight > 0
}

// Update replaces the editable fields. Nil arguments are left unchanged.
func (p *Prize) Update(def *Definition, weight *float64, color *string) error {
	next := *p

	var errList []error
	if def != nil {
		errList = append(errList, next.setDefinition(*def))
	}
	if weight != nil {
		errList = append(errList, next.setWeight(*weight))
	}
	if color != nil {
		errList = append(errList, next.setColor(*color))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	*p = next
	return nil
}

// SetActive toggles whether the prize is drawable.
func (p *Prize) SetActive(active bool) {
	p.active = active
}

func (p *Prize) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Prize) setDefinition(def Definition) error {
	if err := def.Validate(); err != nil {
		return err
	}
	def.Name = strings.TrimSpace(def.Name)
	if def.ProviderID != nil {
		id := *def.ProviderID
		def.ProviderID = &id
	}
	p.definition = def
	return nil
}

func (p *Prize) setWeight(weight float64) error {
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return errs.NewValueIsOutOfRangeError("weight", weight, 0, "unbounded")
	}
	p.weight = weight
	return nil
}

func (p *Prize) setColor(color string) error {
	p.color = strings.TrimSpace(color)
	return nil
}
