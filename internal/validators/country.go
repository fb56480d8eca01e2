package validators

import (
	"fmt"
	"slices"
	"strings"
)

// CountryCode identifies a TIN issuing country.
type CountryCode string

// Supported countries. UK is used instead of the ISO 3166 GB code because the
// rest of the system (and its clients) already speak UK.
const (
	AT CountryCode = "AT"
	BE CountryCode = "BE"
	BG CountryCode = "BG"
	CY CountryCode = "CY"
	DE CountryCode = "DE"
	DK CountryCode = "DK"
	EE CountryCode = "EE"
	ES CountryCode = "ES"
	FI CountryCode = "FI"
	FR CountryCode = "FR"
	HR CountryCode = "HR"
	HU CountryCode = "HU"
	IE CountryCode = "IE"
	IT CountryCode = "IT"
	LT CountryCode = "LT"
	LU CountryCode = "LU"
	NL CountryCode = "NL"
	PL CountryCode = "PL"
	PT CountryCode = "PT"
	SE CountryCode = "SE"
	SI CountryCode = "SI"
	UK CountryCode = "UK"
	US CountryCode = "US"
)

var countryNames = map[CountryCode]string{
	AT: "Austria",
	BE: "Belgium",
	BG: "Bulgaria",
	CY: "Cyprus",
	DE: "Germany",
	DK: "Denmark",
	EE: "Estonia",
	ES: "Spain",
	FI: "Finland",
	FR: "France",
	HR: "Croatia",
	HU: "Hungary",
	IE: "Ireland",
	IT: "Italy",
	LT: "Lithuania",
	LU: "Luxembourg",
	NL: "Netherlands",
	PL: "Poland",
	PT: "Portugal",
	SE: "Sweden",
	SI: "Slovenia",
	UK: "United Kingdom",
	US: "United States",
}

// Countries returns every supported country code in alphabetical order.
func Countries() []CountryCode {
	codes := make([]CountryCode, 0, len(countryNames))
	for code := range countryNames {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	return codes
}

// ParseCountryCode converts user input ("de", " DE ") into a CountryCode.
// Codes outside the supported set yield ErrUnknownCountry; the normalized
// code is returned either way so callers can still echo it back.
func ParseCountryCode(s string) (CountryCode, error) {
	code := CountryCode(strings.ToUpper(strings.TrimSpace(s)))
	if !code.IsKnown() {
		return code, fmt.Errorf("%w %q", ErrUnknownCountry, string(code))
	}

	return code, nil
}

// IsKnown reports whether c belongs to the supported set.
func (c CountryCode) IsKnown() bool {
	_, ok := countryNames[c]
	return ok
}

// Name returns the English country name, or an empty string for unknown codes.
func (c CountryCode) Name() string {
	return countryNames[c]
}

func (c CountryCode) String() string {
	return string(c)
}
