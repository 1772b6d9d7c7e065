package services

import "rental-pricing-api/pkg/models"

const (
	// Modeled baseline: one vacant month per year.
	referenceDaysVacant = 30
	// 1/12 of annual income, as a percentage.
	percentageAnnualLoss = 8.33
)

// VacancyService quantifies the cost of the one-vacant-month baseline.
type VacancyService struct{}

// NewVacancyService creates a new vacancy impact calculator.
func NewVacancyService() *VacancyService {
	return &VacancyService{}
}

// Compute returns the vacancy impact for a monthly rent.
//
// The break-even reduction is rent / (rent × 11), which cancels to
// 100/11 ≈ 9.09% for any positive rent. The cancellation does not hold
// at rent = 0, so that case is guarded to 0 rather than NaN.
func (s *VacancyService) Compute(monthlyRentCLP float64) models.VacancyImpact {
	breakEven := 0.0
	if monthlyRentCLP > 0 {
		breakEven = monthlyRentCLP / (monthlyRentCLP * 11) * 100
	}

	return models.VacancyImpact{
		DaysVacant:                   referenceDaysVacant,
		PercentageAnnualLoss:         percentageAnnualLoss,
		LostIncomeCLP:                monthlyRentCLP,
		BreakEvenReductionPercentage: breakEven,
	}
}
