package services

import (
	"math/rand/v2"
	"sync"

	"marketplace/internal/core/domain/model/prize"
)

// PrizeSelector draws one prize per spin with probability weight / Σweight over
// the drawable prizes (active with a positive weight).
type PrizeSelector struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewPrizeSelector creates a selector around rnd. rand.Rand is not safe for
// concurrent use, so the selector serialises draws.
func NewPrizeSelector(rnd *rand.Rand) *PrizeSelector {
	return &PrizeSelector{rnd: rnd}
}

// Select builds a cumulative partition over the drawable prizes in the order
// given, draws uniformly from [0, total) and returns the first prize whose
// cumulative bound exceeds the draw. It returns prize.ErrNoPrizesConfigured when
// nothing is drawable.
func (s *PrizeSelector) Select(prizes []*prize.Prize) (*prize.Prize, error) {
	drawable := make([]*prize.Prize, 0, len(prizes))
	bounds := make([]float64, 0, len(prizes))

	var total float64
	for _, p := range prizes {
		if p.Validate() != nil || !p.IsDrawable() {
			continue
		}
		total += p.Weight()
		drawable = append(drawable, p)
		bounds = append(bounds, total)
	}

	if len(drawable) == 0 {
		return nil, prize.ErrNoPrizesConfigured
	}

	s.mu.Lock()
	draw := s.rnd.Float64() * total
	s.mu.Unlock()

	for i, bound := range bounds {
		if draw < bound {
			return drawable[i], nil
		}
	}

	// float rounding can leave draw == total
	return drawable[len(drawable)-1], nil
}
