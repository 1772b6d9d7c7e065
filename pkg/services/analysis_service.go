package services

import (
	"time"

	"rental-pricing-api/pkg/models"

	"github.com/google/uuid"
)

// Flow names for the two analysis entry points.
const (
	FlowBrokerage = "brokerage"
	FlowQuick     = "quick"
)

// FlowSettings is the immutable per-flow configuration: which schedule
// template, CAP-rate thresholds and policy table an entry point uses.
type FlowSettings struct {
	Flow              string
	ScheduleTemplate  ScheduleTemplate
	CapRateThresholds CapRateThresholds
	Policies          PolicyTable

	// CommissionDefaults optionally replaces the built-in commissions
	// (from the commercial-policy file). Per-request overrides still win.
	CommissionDefaults map[string]float64
}

// DefaultFlowSettings returns the built-in settings for a flow name.
// Unknown names fall back to the brokerage flow.
func DefaultFlowSettings(flow string) FlowSettings {
	if flow == FlowQuick {
		return FlowSettings{
			Flow:              FlowQuick,
			ScheduleTemplate:  QuickScheduleTemplate,
			CapRateThresholds: QuickCapThresholds,
			Policies:          QuickPolicyTable,
		}
	}
	return FlowSettings{
		Flow:              FlowBrokerage,
		ScheduleTemplate:  BrokerageScheduleTemplate,
		CapRateThresholds: BrokerageCapThresholds,
		Policies:          BrokeragePolicyTable,
	}
}

// AnalysisService composes the calculators into the full pipeline:
// normalize → market study → cap rate → vacancy → plans → comparison.
// Each Run works on its own snapshot; there is no shared mutable state.
type AnalysisService struct {
	normalizer  *NormalizerService
	marketStudy *MarketStudyService
	vacancy     *VacancyService
	plans       *PlanService
}

// NewAnalysisService creates the aggregator from its calculators.
func NewAnalysisService(normalizer *NormalizerService, marketStudy *MarketStudyService, vacancy *VacancyService, plans *PlanService) *AnalysisService {
	return &AnalysisService{
		normalizer:  normalizer,
		marketStudy: marketStudy,
		vacancy:     vacancy,
		plans:       plans,
	}
}

// Run computes a complete analysis for one raw form snapshot under the
// given flow settings. It is total: degenerate inputs produce zero-valued
// figures, never an error.
func (s *AnalysisService) Run(raw models.RawAnalysisInput, settings FlowSettings) models.RentalAnalysisResult {
	input := s.normalizer.Normalize(raw)

	study := s.marketStudy.Estimate(input.SizeM2)
	capRate := NewCapRateService(settings.CapRateThresholds).
		Compute(input.PropertyValueCLP, input.SuggestedRentCLP, input.Expenses)
	vacancy := s.vacancy.Compute(input.SuggestedRentCLP)

	overrides := make(map[string]float64, len(input.CommissionOverrides))
	for id, pct := range settings.CommissionDefaults {
		overrides[id] = pct
	}
	for id, pct := range input.CommissionOverrides {
		overrides[id] = pct
	}
	plans := s.plans.Generate(input.SuggestedRentCLP, overrides, settings.ScheduleTemplate)
	comparisons := NewComparatorService(settings.Policies).Compare(plans, input.SuggestedRentCLP)

	return models.RentalAnalysisResult{
		AnalysisID:             uuid.New().String(),
		GeneratedAt:            time.Now().Format(time.RFC3339),
		Flow:                   settings.Flow,
		Property:               input,
		Plans:                  plans,
		Comparisons:            comparisons,
		MarketStudy:            study,
		CapRate:                capRate,
		VacancyImpact:          vacancy,
		RecommendedInitialRent: s.marketStudy.SuggestInitialRent(input.SizeM2),
	}
}

// SuggestInitialRent exposes the on-demand rent suggestion from a raw
// size field.
func (s *AnalysisService) SuggestInitialRent(rawSize string) float64 {
	return s.marketStudy.SuggestInitialRent(s.normalizer.ParseAmount(rawSize))
}
