package validators

import "regexp"

var (
	nlPattern = regexp.MustCompile(`^\d{9}$`)
	nlWeights = []int{9, 8, 7, 6, 5, 4, 3, 2}
)

// validateNL checks a Dutch BSN (elfproef).
func validateNL(tin string) bool {
	return matchVariants(tin,
		variant{length: 9, pattern: nlPattern, rule: nlCheckDigit},
	)
}

func nlCheckDigit(tin string) bool {
	remainder := weightedSum(tin, nlWeights) % 11
	if remainder == 10 {
		return false
	}

	return remainder == DigitAt(tin, 8)
}
