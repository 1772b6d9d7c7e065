package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMarketStudy(t *testing.T) {
	s := NewMarketStudyService()

	study := s.Estimate(80)

	// Scores 7+8+6 give multiplier 0.7, so 400 × (0.7 + 0.42) = 448.
	assert.InDelta(t, 448, study.AverageRentPerM2, 0.001)
	assert.InDelta(t, 80*448*0.85, study.MarketRangeMinCLP, 0.001)
	assert.InDelta(t, 80*448*1.15, study.MarketRangeMaxCLP, 0.001)
	assert.Less(t, study.MarketRangeMinCLP, study.MarketRangeMaxCLP)

	for _, score := range []int{study.LocationScore, study.TransportationScore, study.AmenitiesScore} {
		assert.GreaterOrEqual(t, score, 1)
		assert.LessOrEqual(t, score, 10)
	}
}

func TestEstimateIsDeterministic(t *testing.T) {
	s := NewMarketStudyService()

	assert.Equal(t, s.Estimate(55), s.Estimate(55))
}

func TestEstimateZeroSize(t *testing.T) {
	s := NewMarketStudyService()

	study := s.Estimate(0)

	assert.Zero(t, study.MarketRangeMinCLP)
	assert.Zero(t, study.MarketRangeMaxCLP)
	assert.InDelta(t, 448, study.AverageRentPerM2, 0.001)
}

func TestSuggestInitialRent(t *testing.T) {
	s := NewMarketStudyService()

	assert.InDelta(t, 35840, s.SuggestInitialRent(80), 0.001)
	assert.Zero(t, s.SuggestInitialRent(0))

	// Whole pesos only.
	suggested := s.SuggestInitialRent(33.3)
	assert.Equal(t, float64(int64(suggested)), suggested)
}
