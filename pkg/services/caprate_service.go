package services

import "rental-pricing-api/pkg/models"

// CapRateThresholds bound the three-way comparison bucket, in CAP-rate
// percentage points. Above Upper reads "above" market, below Lower reads
// "below", anything between is "average".
type CapRateThresholds struct {
	Upper float64 `json:"upper" yaml:"upper"`
	Lower float64 `json:"lower" yaml:"lower"`
}

// The two threshold pairs used by the two entry points. The brokerage
// flow keeps the historical 6/4 pair; the quick-analysis flow grades
// against the stricter 8/6 pair.
var (
	BrokerageCapThresholds = CapRateThresholds{Upper: 6, Lower: 4}
	QuickCapThresholds     = CapRateThresholds{Upper: 8, Lower: 6}
)

// CapRateService computes the annual profitability breakdown.
type CapRateService struct {
	thresholds CapRateThresholds
}

// NewCapRateService creates a calculator grading against the given
// threshold pair.
func NewCapRateService(thresholds CapRateThresholds) *CapRateService {
	return &CapRateService{thresholds: thresholds}
}

// Compute derives annual income, expenses, NOI and the CAP rate.
// A negative NOI is a meaningful signal and is never floored to zero.
// When the property value is not positive the CAP rate is defined as 0.
func (s *CapRateService) Compute(propertyValueCLP, monthlyRentCLP float64, expenses models.ExpenseProfile) models.CapRateAnalysis {
	annualIncome := monthlyRentCLP * 12
	annualExpenses := expenses.Total()
	noi := annualIncome - annualExpenses

	capRate := 0.0
	if propertyValueCLP > 0 {
		capRate = noi / propertyValueCLP * 100
	}

	return models.CapRateAnalysis{
		PropertyValueCLP:   propertyValueCLP,
		AnnualRentalIncome: annualIncome,
		AnnualExpenses:     annualExpenses,
		NetOperatingIncome: noi,
		CapRatePercentage:  capRate,
		ComparisonToMarket: s.compareToMarket(capRate),
	}
}

func (s *CapRateService) compareToMarket(capRate float64) string {
	switch {
	case capRate > s.thresholds.Upper:
		return models.ComparisonAbove
	case capRate < s.thresholds.Lower:
		return models.ComparisonBelow
	default:
		return models.ComparisonAverage
	}
}
