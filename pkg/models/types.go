package models

// Currency codes accepted on monetary form fields.
const (
	CurrencyCLP = "CLP"
	CurrencyUF  = "UF"
)

// RawAnalysisInput is the flat textual form record received from the
// form/validation collaborator. Every field may be empty or malformed;
// the normalizer coerces what it cannot parse to zero.
type RawAnalysisInput struct {
	Address               string            `json:"address"`
	PropertyValue         string            `json:"property_value"`
	PropertyValueCurrency string            `json:"property_value_currency"`
	SizeM2                string            `json:"size_m2"`
	Bedrooms              string            `json:"bedrooms"`
	Bathrooms             string            `json:"bathrooms"`
	ParkingSpaces         string            `json:"parking_spaces"`
	StorageUnits          string            `json:"storage_units"`
	SuggestedRent         string            `json:"suggested_rent"`
	SuggestedRentCurrency string            `json:"suggested_rent_currency"`
	CapturePrice          string            `json:"capture_price"`
	CapturePriceCurrency  string            `json:"capture_price_currency"`
	MaintenanceAnnual     string            `json:"maintenance_annual"`
	PropertyTaxAnnual     string            `json:"property_tax_annual"`
	InsuranceAnnual       string            `json:"insurance_annual"`
	CommissionOverrides   map[string]string `json:"commission_overrides,omitempty"`
	ExchangeRate          string            `json:"uf_exchange_rate"`
}

// NormalizedInput is the numeric snapshot the engine computes from.
// All monetary amounts are CLP; UF fields have already been converted.
type NormalizedInput struct {
	Address             string             `json:"address"`
	PropertyValueCLP    float64            `json:"property_value_clp"`
	SizeM2              float64            `json:"size_m2"`
	Bedrooms            int                `json:"bedrooms"`
	Bathrooms           int                `json:"bathrooms"`
	ParkingSpaces       int                `json:"parking_spaces"`
	StorageUnits        int                `json:"storage_units"`
	SuggestedRentCLP    float64            `json:"suggested_rent_clp"`
	CapturePriceCLP     float64            `json:"capture_price_clp"`
	Expenses            ExpenseProfile     `json:"expenses"`
	CommissionOverrides map[string]float64 `json:"commission_overrides,omitempty"`
	ExchangeRateCLP     float64            `json:"exchange_rate_clp"`
}

// ExpenseProfile holds the three annual operating expenses, in CLP.
type ExpenseProfile struct {
	MaintenanceAnnual float64 `json:"maintenance_annual"`
	PropertyTaxAnnual float64 `json:"property_tax_annual"`
	InsuranceAnnual   float64 `json:"insurance_annual"`
}

// Total returns the annual operating expenses.
func (e ExpenseProfile) Total() float64 {
	return e.MaintenanceAnnual + e.PropertyTaxAnnual + e.InsuranceAnnual
}

// DefaultFormInput returns the pre-filled form values served to the form
// collaborator. These are form-state defaults only; the engine itself
// treats missing fields as zero.
func DefaultFormInput() RawAnalysisInput {
	return RawAnalysisInput{
		PropertyValueCurrency: CurrencyCLP,
		SuggestedRentCurrency: CurrencyCLP,
		CapturePriceCurrency:  CurrencyCLP,
		Bedrooms:              "2",
		Bathrooms:             "1",
		ParkingSpaces:         "1",
		StorageUnits:          "1",
		ExchangeRate:          "37800",
	}
}
