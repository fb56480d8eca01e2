package validators

import "regexp"

var usPattern = regexp.MustCompile(`^\d{9}$`)

// validateUS checks the shape of a US SSN/ITIN/EIN. Only the structure is
// verified.
func validateUS(tin string) bool {
	return matchVariants(ClearString(tin),
		variant{length: 9, pattern: usPattern},
	)
}
