package services

import (
	"testing"

	"rental-pricing-api/pkg/models"

	"github.com/stretchr/testify/assert"
)

func TestGeneratePlansOrderAndCommissions(t *testing.T) {
	s := NewPlanService()

	for name, template := range map[string]ScheduleTemplate{
		"brokerage": BrokerageScheduleTemplate,
		"quick":     QuickScheduleTemplate,
	} {
		t.Run(name, func(t *testing.T) {
			plans := s.Generate(1000000, nil, template)

			assert.Len(t, plans, 3)
			assert.Equal(t, models.PlanA, plans[0].ID)
			assert.Equal(t, models.PlanB, plans[1].ID)
			assert.Equal(t, models.PlanC, plans[2].ID)

			// Commission strictly decreases A > B > C.
			assert.Greater(t, plans[0].CommissionPercentage, plans[1].CommissionPercentage)
			assert.Greater(t, plans[1].CommissionPercentage, plans[2].CommissionPercentage)
		})
	}
}

func TestScheduleInvariants(t *testing.T) {
	s := NewPlanService()
	baseRent := 1000000.0

	for name, template := range map[string]ScheduleTemplate{
		"brokerage": BrokerageScheduleTemplate,
		"quick":     QuickScheduleTemplate,
	} {
		t.Run(name, func(t *testing.T) {
			for _, plan := range s.Generate(baseRent, nil, template) {
				schedule := plan.Schedule
				assert.NotEmpty(t, schedule)

				// The first entry is always day 0 at the full base rent.
				assert.Equal(t, 0, schedule[0].Day)
				assert.Zero(t, schedule[0].PercentageReduction)
				assert.InDelta(t, baseRent, schedule[0].RentCLP, 0.001)

				for i, entry := range schedule {
					// Multiplicative round-trip law for every entry.
					assert.InDelta(t, baseRent*(1-entry.PercentageReduction/100), entry.RentCLP, 0.001)

					if i > 0 {
						assert.Greater(t, entry.Day, schedule[i-1].Day)
						assert.GreaterOrEqual(t, entry.PercentageReduction, schedule[i-1].PercentageReduction)
					}
				}
			}
		})
	}
}

func TestBrokerageScheduleDay22(t *testing.T) {
	s := NewPlanService()

	plans := s.Generate(1000000, nil, BrokerageScheduleTemplate)

	planA := plans[0]
	last := planA.Schedule[len(planA.Schedule)-1]
	assert.Equal(t, 22, last.Day)
	assert.InDelta(t, 880000, last.RentCLP, 0.001)
}

func TestTemplatesAreDistinct(t *testing.T) {
	// Two entry points, two canonical template sets; they must not be
	// merged into one.
	assert.NotEqual(t, BrokerageScheduleTemplate[models.PlanA], QuickScheduleTemplate[models.PlanA])
	assert.NotEqual(t, BrokerageScheduleTemplate[models.PlanC], QuickScheduleTemplate[models.PlanC])
}

func TestCommissionOverride(t *testing.T) {
	s := NewPlanService()

	plans := s.Generate(1000000, map[string]float64{"A": 15}, BrokerageScheduleTemplate)

	assert.InDelta(t, 15, plans[0].CommissionPercentage, 0.001)
	assert.InDelta(t, 10, plans[1].CommissionPercentage, 0.001)
	assert.InDelta(t, 8, plans[2].CommissionPercentage, 0.001)

	// Non-positive overrides keep the default.
	plans = s.Generate(1000000, map[string]float64{"B": -3}, BrokerageScheduleTemplate)
	assert.InDelta(t, 10, plans[1].CommissionPercentage, 0.001)
}

func TestGeneratePlansZeroBaseRent(t *testing.T) {
	s := NewPlanService()

	for _, plan := range s.Generate(0, nil, QuickScheduleTemplate) {
		assert.Zero(t, plan.InitialRentCLP)
		for _, entry := range plan.Schedule {
			assert.Zero(t, entry.RentCLP)
		}
	}
}
