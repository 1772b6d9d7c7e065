package services

import (
	"math"
	"strconv"
	"strings"

	"rental-pricing-api/pkg/models"
)

// DefaultExchangeRateCLP is used when the UF exchange-rate field is
// unset or unparsable.
const DefaultExchangeRateCLP = 37800.0

// NormalizerService coerces raw textual form fields into numeric CLP
// values. It never fails: anything it cannot parse becomes zero, so the
// engine can run over partially filled forms.
type NormalizerService struct {
	defaultExchangeRate float64
}

// NewNormalizerService creates a normalizer with the given fallback
// CLP-per-UF rate. A non-positive rate falls back to the package default.
func NewNormalizerService(defaultExchangeRate float64) *NormalizerService {
	if defaultExchangeRate <= 0 {
		defaultExchangeRate = DefaultExchangeRateCLP
	}
	return &NormalizerService{defaultExchangeRate: defaultExchangeRate}
}

// ParseAmount parses a monetary form field. Accepts "$", spaces and both
// Chilean ("1.500.000,50") and plain ("1500000.50") notations.
func (s *NormalizerService) ParseAmount(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return 0
	}
	cleaned = strings.NewReplacer("$", "", " ", "", " ", "").Replace(cleaned)

	dots := strings.Count(cleaned, ".")
	commas := strings.Count(cleaned, ",")
	switch {
	case dots > 0 && commas > 0:
		// The rightmost separator is the decimal one.
		if strings.LastIndex(cleaned, ".") > strings.LastIndex(cleaned, ",") {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		}
	case commas == 1:
		if isThousandsGroup(cleaned, ',') {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		}
	case commas > 1:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	case dots == 1:
		// "800.000" reads as a Chilean thousands group, not 800.0.
		if isThousandsGroup(cleaned, '.') {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
		}
	case dots > 1:
		cleaned = strings.ReplaceAll(cleaned, ".", "")
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// isThousandsGroup reports whether the single separator in s is
// followed by exactly three digits, reading as a thousands group.
func isThousandsGroup(s string, sep byte) bool {
	idx := strings.IndexByte(s, sep)
	return idx >= 0 && len(s)-idx-1 == 3
}

// ParseCount parses an integer form field (bedrooms, parking, ...).
func (s *NormalizerService) ParseCount(raw string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseExchangeRate parses the CLP-per-UF field, falling back to the
// configured default when unset or unparsable.
func (s *NormalizerService) ParseExchangeRate(raw string) float64 {
	rate := s.ParseAmount(raw)
	if rate <= 0 {
		return s.defaultExchangeRate
	}
	return rate
}

// ToCLP converts an amount in the given currency to CLP.
func (s *NormalizerService) ToCLP(amount float64, currency string, exchangeRate float64) float64 {
	if strings.EqualFold(strings.TrimSpace(currency), models.CurrencyUF) {
		return amount * exchangeRate
	}
	return amount
}

// Normalize turns the raw form record into the numeric CLP snapshot the
// rest of the engine computes from.
func (s *NormalizerService) Normalize(raw models.RawAnalysisInput) models.NormalizedInput {
	rate := s.ParseExchangeRate(raw.ExchangeRate)

	overrides := make(map[string]float64)
	for id, value := range raw.CommissionOverrides {
		if pct := s.ParseAmount(value); pct > 0 {
			overrides[strings.ToUpper(strings.TrimSpace(id))] = pct
		}
	}
	if len(overrides) == 0 {
		overrides = nil
	}

	return models.NormalizedInput{
		Address:          strings.TrimSpace(raw.Address),
		PropertyValueCLP: s.ToCLP(s.ParseAmount(raw.PropertyValue), raw.PropertyValueCurrency, rate),
		SizeM2:           s.ParseAmount(raw.SizeM2),
		Bedrooms:         s.ParseCount(raw.Bedrooms),
		Bathrooms:        s.ParseCount(raw.Bathrooms),
		ParkingSpaces:    s.ParseCount(raw.ParkingSpaces),
		StorageUnits:     s.ParseCount(raw.StorageUnits),
		SuggestedRentCLP: s.ToCLP(s.ParseAmount(raw.SuggestedRent), raw.SuggestedRentCurrency, rate),
		CapturePriceCLP:  s.ToCLP(s.ParseAmount(raw.CapturePrice), raw.CapturePriceCurrency, rate),
		Expenses: models.ExpenseProfile{
			MaintenanceAnnual: s.ParseAmount(raw.MaintenanceAnnual),
			PropertyTaxAnnual: s.ParseAmount(raw.PropertyTaxAnnual),
			InsuranceAnnual:   s.ParseAmount(raw.InsuranceAnnual),
		},
		CommissionOverrides: overrides,
		ExchangeRateCLP:     rate,
	}
}
