package models

// ValidationRequest asks for a single TIN to be checked against the scheme
// of Country. An empty TIN is a valid request and simply validates to false.
type ValidationRequest struct {
	// TIN is the raw number as typed by the user, separators included.
	TIN string `json:"tin" validate:"max=64"`

	// Country is the two-letter code of the issuing country (e.g. "DE", "UK").
	Country string `json:"country" validate:"required,tin_country"`
}

// ValidationResult is the outcome of a single validation.
type ValidationResult struct {
	// TIN is the masked input; only the last characters are kept.
	TIN string `json:"tin"`

	// Country is the normalized country code.
	Country string `json:"country"`

	// Valid reports whether the TIN satisfies the national scheme.
	Valid bool `json:"valid"`

	// Error is set for batch items that could not be validated at all
	// (unknown country). It is never set for a merely invalid TIN.
	Error string `json:"error,omitempty"`
}

// BatchRequest carries several validations at once.
type BatchRequest struct {
	Items []ValidationRequest `json:"items" validate:"required,min=1,dive"`
}

// BatchResponse lists the results in request order.
type BatchResponse struct {
	Results []ValidationResult `json:"results"`
	Valid   int                `json:"valid"`
	Invalid int                `json:"invalid"`
	Failed  int                `json:"failed"`
}

// CountryInfo describes a supported country.
type CountryInfo struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CountriesResponse lists the supported countries.
type CountriesResponse struct {
	Countries []CountryInfo `json:"countries"`
}

// NewBatchResponse wraps results and tallies them.
func NewBatchResponse(results []ValidationResult) BatchResponse {
	resp := BatchResponse{Results: results}
	for _, r := range results {
		switch {
		case r.Error != "":
			resp.Failed++
		case r.Valid:
			resp.Valid++
		default:
			resp.Invalid++
		}
	}
	return resp
}
