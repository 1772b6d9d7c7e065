package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVacancyImpact(t *testing.T) {
	s := NewVacancyService()

	impact := s.Compute(800000)

	assert.Equal(t, 30, impact.DaysVacant)
	assert.InDelta(t, 8.33, impact.PercentageAnnualLoss, 0.001)
	assert.InDelta(t, 800000, impact.LostIncomeCLP, 0.001)
	assert.InDelta(t, 100.0/11.0, impact.BreakEvenReductionPercentage, 0.0001)
}

func TestBreakEvenIsRentIndependent(t *testing.T) {
	s := NewVacancyService()

	// The ratio cancels to 100/11 for any positive rent.
	for _, rent := range []float64{1, 350000, 800000, 2500000, 1e12} {
		impact := s.Compute(rent)
		assert.InDelta(t, 100.0/11.0, impact.BreakEvenReductionPercentage, 0.0001, "rent %v", rent)
		assert.False(t, math.IsNaN(impact.BreakEvenReductionPercentage))
	}
}

func TestVacancyImpactZeroRent(t *testing.T) {
	s := NewVacancyService()

	impact := s.Compute(0)

	// The algebraic cancellation does not hold at zero; guarded to 0.
	assert.Zero(t, impact.BreakEvenReductionPercentage)
	assert.Zero(t, impact.LostIncomeCLP)
	assert.False(t, math.IsNaN(impact.BreakEvenReductionPercentage))
}
