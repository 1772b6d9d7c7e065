package services

import (
	"testing"

	"rental-pricing-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func newTestAnalysisService() *AnalysisService {
	return NewAnalysisService(
		NewNormalizerService(0),
		NewMarketStudyService(),
		NewVacancyService(),
		NewPlanService(),
	)
}

func TestRunFullAnalysis(t *testing.T) {
	s := newTestAnalysisService()

	result := s.Run(models.RawAnalysisInput{
		Address:           "Av. Apoquindo 4501, Las Condes",
		PropertyValue:     "100000000",
		SizeM2:            "80",
		SuggestedRent:     "800000",
		MaintenanceAnnual: "500000",
		PropertyTaxAnnual: "300000",
		InsuranceAnnual:   "200000",
	}, DefaultFlowSettings(FlowBrokerage))

	assert.NotEmpty(t, result.AnalysisID)
	assert.NotEmpty(t, result.GeneratedAt)
	assert.Equal(t, FlowBrokerage, result.Flow)

	assert.InDelta(t, 9600000, result.CapRate.AnnualRentalIncome, 0.001)
	assert.InDelta(t, 1000000, result.CapRate.AnnualExpenses, 0.001)
	assert.InDelta(t, 8600000, result.CapRate.NetOperatingIncome, 0.001)
	assert.InDelta(t, 8.6, result.CapRate.CapRatePercentage, 0.001)
	assert.Equal(t, models.ComparisonAbove, result.CapRate.ComparisonToMarket)

	assert.Len(t, result.Plans, 3)
	assert.Len(t, result.Comparisons, 3)
	assert.InDelta(t, 800000, result.Plans[0].InitialRentCLP, 0.001)
	assert.InDelta(t, 800000, result.VacancyImpact.LostIncomeCLP, 0.001)
	assert.InDelta(t, 35840, result.RecommendedInitialRent, 0.001)
}

func TestRunEmptyFormIsDegenerate(t *testing.T) {
	s := newTestAnalysisService()

	result := s.Run(models.RawAnalysisInput{}, DefaultFlowSettings(FlowQuick))

	// No rent, no value: every figure degrades to zero, nothing panics
	// and nothing is NaN.
	assert.Zero(t, result.CapRate.CapRatePercentage)
	assert.Zero(t, result.VacancyImpact.LostIncomeCLP)
	assert.Zero(t, result.VacancyImpact.BreakEvenReductionPercentage)
	assert.Len(t, result.Plans, 3)
	for _, plan := range result.Plans {
		assert.Zero(t, plan.InitialRentCLP)
	}
}

func TestRunFlowSelectsTemplateAndThresholds(t *testing.T) {
	s := newTestAnalysisService()
	raw := models.RawAnalysisInput{
		PropertyValue: "100000000",
		SuggestedRent: "600000", // 7.2% cap rate
	}

	brokerage := s.Run(raw, DefaultFlowSettings(FlowBrokerage))
	quick := s.Run(raw, DefaultFlowSettings(FlowQuick))

	// 7.2% is above the 6/4 pair but average against the 8/6 pair.
	assert.Equal(t, models.ComparisonAbove, brokerage.CapRate.ComparisonToMarket)
	assert.Equal(t, models.ComparisonAverage, quick.CapRate.ComparisonToMarket)

	// Template 1 ends Plan A at day 22, Template 2 at day 30.
	lastBrokerage := brokerage.Plans[0].Schedule[len(brokerage.Plans[0].Schedule)-1]
	lastQuick := quick.Plans[0].Schedule[len(quick.Plans[0].Schedule)-1]
	assert.Equal(t, 22, lastBrokerage.Day)
	assert.Equal(t, 30, lastQuick.Day)
}

func TestRunCommissionOverrideFromForm(t *testing.T) {
	s := newTestAnalysisService()

	result := s.Run(models.RawAnalysisInput{
		SuggestedRent:       "1000000",
		CommissionOverrides: map[string]string{"A": "15"},
	}, DefaultFlowSettings(FlowBrokerage))

	assert.InDelta(t, 15, result.Plans[0].CommissionPercentage, 0.001)
	assert.InDelta(t, 10, result.Plans[1].CommissionPercentage, 0.001)
}

func TestRunCommissionDefaultsFromPolicy(t *testing.T) {
	s := newTestAnalysisService()
	settings := DefaultFlowSettings(FlowBrokerage)
	settings.CommissionDefaults = map[string]float64{"A": 14, "C": 6}

	// Policy defaults apply, but per-request overrides still win.
	result := s.Run(models.RawAnalysisInput{
		SuggestedRent:       "1000000",
		CommissionOverrides: map[string]string{"C": "9"},
	}, settings)

	assert.InDelta(t, 14, result.Plans[0].CommissionPercentage, 0.001)
	assert.InDelta(t, 10, result.Plans[1].CommissionPercentage, 0.001)
	assert.InDelta(t, 9, result.Plans[2].CommissionPercentage, 0.001)
}

func TestRunUFInputs(t *testing.T) {
	s := newTestAnalysisService()

	result := s.Run(models.RawAnalysisInput{
		PropertyValue:         "3000",
		PropertyValueCurrency: "UF",
		SuggestedRent:         "20",
		SuggestedRentCurrency: "UF",
		ExchangeRate:          "38000",
	}, DefaultFlowSettings(FlowBrokerage))

	assert.InDelta(t, 114000000, result.Property.PropertyValueCLP, 0.001)
	assert.InDelta(t, 760000, result.Property.SuggestedRentCLP, 0.001)
	assert.InDelta(t, 760000, result.Plans[0].InitialRentCLP, 0.001)
}
