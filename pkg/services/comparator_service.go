package services

import "rental-pricing-api/pkg/models"

// PlanPolicy holds the fixed business-policy parameters of one plan.
// The risk and recommendation scores are static priors set by commercial
// policy; they are deliberately NOT derived from the computed income, so
// Plan A always ranks first regardless of the arithmetic.
type PlanPolicy struct {
	ExpectedRentalTimeDays int     `json:"expected_rental_time_days" yaml:"expected_rental_time_days"`
	MonthsVacant           float64 `json:"months_vacant" yaml:"months_vacant"`
	VacancyRiskScore       int     `json:"vacancy_risk_score" yaml:"vacancy_risk_score"`
	RecommendationScore    int     `json:"recommendation_score" yaml:"recommendation_score"`
}

// PolicyTable maps plan ids to their policy parameters.
type PolicyTable map[models.PlanID]PlanPolicy

// The two expected-lease-time models, matching the two entry points.
// Vacancy months and scores are shared; only the lease-time expectation
// differs between flows.
var (
	BrokeragePolicyTable = PolicyTable{
		models.PlanA: {ExpectedRentalTimeDays: 7, MonthsVacant: 0.25, VacancyRiskScore: 2, RecommendationScore: 9},
		models.PlanB: {ExpectedRentalTimeDays: 12, MonthsVacant: 0.4, VacancyRiskScore: 5, RecommendationScore: 7},
		models.PlanC: {ExpectedRentalTimeDays: 20, MonthsVacant: 0.67, VacancyRiskScore: 8, RecommendationScore: 5},
	}

	QuickPolicyTable = PolicyTable{
		models.PlanA: {ExpectedRentalTimeDays: 15, MonthsVacant: 0.25, VacancyRiskScore: 2, RecommendationScore: 9},
		models.PlanB: {ExpectedRentalTimeDays: 20, MonthsVacant: 0.4, VacancyRiskScore: 5, RecommendationScore: 7},
		models.PlanC: {ExpectedRentalTimeDays: 30, MonthsVacant: 0.67, VacancyRiskScore: 8, RecommendationScore: 5},
	}
)

// ComparatorService derives the per-plan income comparison.
type ComparatorService struct {
	policies PolicyTable
}

// NewComparatorService creates a comparator over the given policy table.
func NewComparatorService(policies PolicyTable) *ComparatorService {
	return &ComparatorService{policies: policies}
}

// Compare produces one comparison per plan, in plan order.
//
// The average effective rent treats the final discount as roughly the
// midpoint between the day-0 price and the final price
// (base × (1 − last_pct/200)). A true time-weighted average over the
// schedule would change the output numbers; see DESIGN.md.
func (s *ComparatorService) Compare(plans []models.CommercialPlan, baseRentCLP float64) []models.PlanComparison {
	comparisons := make([]models.PlanComparison, 0, len(plans))
	for _, plan := range plans {
		policy := s.policies[plan.ID]

		avgEffectiveRent := baseRentCLP
		if len(plan.Schedule) > 1 {
			lastPct := plan.Schedule[len(plan.Schedule)-1].PercentageReduction
			avgEffectiveRent = baseRentCLP * (1 - lastPct/200)
		}

		effectiveMonths := 12 - policy.MonthsVacant
		annualRent := avgEffectiveRent * effectiveMonths
		commission := annualRent * plan.CommissionPercentage / 100

		comparisons = append(comparisons, models.PlanComparison{
			PlanID:                 plan.ID,
			ExpectedRentalTimeDays: policy.ExpectedRentalTimeDays,
			TotalCommissionCLP:     commission,
			NetAnnualIncomeCLP:     annualRent - commission,
			VacancyRiskScore:       policy.VacancyRiskScore,
			RecommendationScore:    policy.RecommendationScore,
		})
	}
	return comparisons
}
