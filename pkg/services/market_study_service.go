package services

import (
	"math"

	"rental-pricing-api/pkg/models"
)

// Base figure for the market heuristic, in CLP per m² per month.
const baseRentPerM2 = 400.0

// Fixed neighborhood scores (1-10). These are not sourced from live
// market data; the estimator is a deterministic heuristic.
const (
	defaultLocationScore       = 7
	defaultTransportationScore = 8
	defaultAmenitiesScore      = 6
)

// MarketStudyService produces the advisory market estimate. It is
// stateless; the same size always yields the same study.
type MarketStudyService struct{}

// NewMarketStudyService creates a new market study estimator.
func NewMarketStudyService() *MarketStudyService {
	return &MarketStudyService{}
}

// Estimate builds the market study for a property size.
// The three scores push the multiplier into roughly [0.73, 1.3] of the
// base rent per m²; the range spans ±15% around the adjusted midpoint.
func (s *MarketStudyService) Estimate(sizeM2 float64) models.MarketStudy {
	multiplier := float64(defaultLocationScore+defaultTransportationScore+defaultAmenitiesScore) / 30.0
	adjusted := baseRentPerM2 * (0.7 + multiplier*0.6)

	return models.MarketStudy{
		AverageRentPerM2:    adjusted,
		MarketRangeMinCLP:   sizeM2 * adjusted * 0.85,
		MarketRangeMaxCLP:   sizeM2 * adjusted * 1.15,
		LocationScore:       defaultLocationScore,
		TransportationScore: defaultTransportationScore,
		AmenitiesScore:      defaultAmenitiesScore,
	}
}

// SuggestInitialRent is the on-demand suggest-initial-rent operation:
// size times the adjusted average rent per m², rounded to whole pesos.
func (s *MarketStudyService) SuggestInitialRent(sizeM2 float64) float64 {
	study := s.Estimate(sizeM2)
	return math.Round(sizeM2 * study.AverageRentPerM2)
}
