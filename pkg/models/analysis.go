package models

// PlanID identifies one of the three fixed commercial plans.
type PlanID string

const (
	PlanA PlanID = "A"
	PlanB PlanID = "B"
	PlanC PlanID = "C"
)

// PlanIDs is the fixed output order of every analysis.
var PlanIDs = []PlanID{PlanA, PlanB, PlanC}

// Market comparison buckets for the CAP rate.
const (
	ComparisonAbove   = "above"
	ComparisonAverage = "average"
	ComparisonBelow   = "below"
)

// MarketStudy is the heuristic market estimate for a property size.
// Advisory only; it does not feed the CAP-rate figures.
type MarketStudy struct {
	AverageRentPerM2    float64 `json:"average_rent_per_m2"`
	MarketRangeMinCLP   float64 `json:"market_range_min_clp"`
	MarketRangeMaxCLP   float64 `json:"market_range_max_clp"`
	LocationScore       int     `json:"location_score"`
	TransportationScore int     `json:"transportation_score"`
	AmenitiesScore      int     `json:"amenities_score"`
}

// CapRateAnalysis is the annual profitability breakdown.
type CapRateAnalysis struct {
	PropertyValueCLP   float64 `json:"property_value_clp"`
	AnnualRentalIncome float64 `json:"annual_rental_income"`
	AnnualExpenses     float64 `json:"annual_expenses"`
	NetOperatingIncome float64 `json:"net_operating_income"`
	CapRatePercentage  float64 `json:"cap_rate_percentage"`
	ComparisonToMarket string  `json:"comparison_to_market"`
}

// VacancyImpact quantifies the cost of one vacant month.
type VacancyImpact struct {
	DaysVacant                   int     `json:"days_vacant"`
	PercentageAnnualLoss         float64 `json:"percentage_annual_loss"`
	LostIncomeCLP                float64 `json:"lost_income_clp"`
	BreakEvenReductionPercentage float64 `json:"break_even_reduction_percentage"`
}

// PriceAdjustment is one entry of a plan's price-decay schedule.
type PriceAdjustment struct {
	Day                 int     `json:"day"`
	RentCLP             float64 `json:"rent_clp"`
	PercentageReduction float64 `json:"percentage_reduction"`
}

// CommercialPlan is one of the three fixed pricing strategies.
type CommercialPlan struct {
	ID                   PlanID            `json:"id"`
	Name                 string            `json:"name"`
	Description          string            `json:"description"`
	ServiceTier          string            `json:"service_tier"`
	InitialRentCLP       float64           `json:"initial_rent_clp"`
	CommissionPercentage float64           `json:"commission_percentage"`
	MarketingDays        int               `json:"marketing_days"`
	Schedule             []PriceAdjustment `json:"schedule"`
}

// PlanComparison attaches the policy parameters and derived income
// figures to a plan.
type PlanComparison struct {
	PlanID                 PlanID  `json:"plan_id"`
	ExpectedRentalTimeDays int     `json:"expected_rental_time_days"`
	TotalCommissionCLP     float64 `json:"total_commission_clp"`
	NetAnnualIncomeCLP     float64 `json:"net_annual_income_clp"`
	VacancyRiskScore       int     `json:"vacancy_risk_score"`
	RecommendationScore    int     `json:"recommendation_score"`
}

// RentalAnalysisResult is the single record returned to render/export
// collaborators. Recomputed wholesale whenever an input changes.
type RentalAnalysisResult struct {
	AnalysisID             string           `json:"analysis_id"`
	GeneratedAt            string           `json:"generated_at"`
	Flow                   string           `json:"flow"`
	Property               NormalizedInput  `json:"property"`
	Plans                  []CommercialPlan `json:"plans"`
	Comparisons            []PlanComparison `json:"comparisons"`
	MarketStudy            MarketStudy      `json:"market_study"`
	CapRate                CapRateAnalysis  `json:"cap_rate"`
	VacancyImpact          VacancyImpact    `json:"vacancy_impact"`
	RecommendedInitialRent float64          `json:"recommended_initial_rent"`
}
