package services

import "rental-pricing-api/pkg/models"

// ScheduleStep is one point of a price-decay template: on the given day
// the listed rent drops to base × (1 − Pct/100).
type ScheduleStep struct {
	Day int     `yaml:"day" json:"day"`
	Pct float64 `yaml:"pct" json:"pct"`
}

// ScheduleTemplate maps each plan to its price-decay steps.
type ScheduleTemplate map[models.PlanID][]ScheduleStep

// The two canonical template sets. They come from different entry points
// of the product and are intentionally kept separate; do not merge them.
var (
	// BrokerageScheduleTemplate backs the brokerage/exclusivity flow.
	BrokerageScheduleTemplate = ScheduleTemplate{
		models.PlanA: {{Day: 0, Pct: 0}, {Day: 7, Pct: 4}, {Day: 15, Pct: 8}, {Day: 22, Pct: 12}},
		models.PlanB: {{Day: 0, Pct: 0}, {Day: 10, Pct: 5}, {Day: 20, Pct: 10}},
		models.PlanC: {{Day: 0, Pct: 0}, {Day: 15, Pct: 3}},
	}

	// QuickScheduleTemplate backs the quick-analysis flow.
	QuickScheduleTemplate = ScheduleTemplate{
		models.PlanA: {{Day: 0, Pct: 0}, {Day: 15, Pct: 5}, {Day: 25, Pct: 8}, {Day: 30, Pct: 10}},
		models.PlanB: {{Day: 0, Pct: 0}, {Day: 20, Pct: 7}, {Day: 30, Pct: 12}},
		models.PlanC: {{Day: 0, Pct: 0}, {Day: 30, Pct: 15}},
	}
)

// DefaultCommissions per plan, in percent. Commission strictly decreases
// from A to C, mirroring the decay aggressiveness.
var DefaultCommissions = map[models.PlanID]float64{
	models.PlanA: 12,
	models.PlanB: 10,
	models.PlanC: 8,
}

// planIdentity is the fixed descriptive metadata of each plan.
type planIdentity struct {
	name          string
	description   string
	serviceTier   string
	marketingDays int
}

var planIdentities = map[models.PlanID]planIdentity{
	models.PlanA: {
		name:          "Plan A - Arriendo Rápido",
		description:   "Aggressive price decay for the fastest possible placement.",
		serviceTier:   "premium",
		marketingDays: 30,
	},
	models.PlanB: {
		name:          "Plan B - Equilibrado",
		description:   "Moderate decay balancing lease speed against rent captured.",
		serviceTier:   "standard",
		marketingDays: 45,
	},
	models.PlanC: {
		name:          "Plan C - Renta Máxima",
		description:   "Patient strategy holding price to maximize total rent.",
		serviceTier:   "basic",
		marketingDays: 60,
	},
}

// PlanService generates the three commercial plans from a base rent.
type PlanService struct{}

// NewPlanService creates a new plan generator.
func NewPlanService() *PlanService {
	return &PlanService{}
}

// Generate builds exactly three plans, always ordered A, B, C, from the
// chosen template. Commission overrides are keyed by plan id; values ≤ 0
// keep the default.
func (s *PlanService) Generate(baseRentCLP float64, overrides map[string]float64, template ScheduleTemplate) []models.CommercialPlan {
	plans := make([]models.CommercialPlan, 0, len(models.PlanIDs))
	for _, id := range models.PlanIDs {
		identity := planIdentities[id]

		commission := DefaultCommissions[id]
		if pct, ok := overrides[string(id)]; ok && pct > 0 {
			commission = pct
		}

		plans = append(plans, models.CommercialPlan{
			ID:                   id,
			Name:                 identity.name,
			Description:          identity.description,
			ServiceTier:          identity.serviceTier,
			InitialRentCLP:       baseRentCLP,
			CommissionPercentage: commission,
			MarketingDays:        identity.marketingDays,
			Schedule:             buildSchedule(baseRentCLP, template[id]),
		})
	}
	return plans
}

// buildSchedule applies new_rent = base × (1 − pct/100) to each step.
// The first entry is always day 0 at the full base rent.
func buildSchedule(baseRentCLP float64, steps []ScheduleStep) []models.PriceAdjustment {
	schedule := make([]models.PriceAdjustment, 0, len(steps))
	for _, step := range steps {
		schedule = append(schedule, models.PriceAdjustment{
			Day:                 step.Day,
			RentCLP:             baseRentCLP * (1 - step.Pct/100),
			PercentageReduction: step.Pct,
		})
	}
	return schedule
}
