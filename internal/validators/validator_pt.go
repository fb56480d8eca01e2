package validators

import "regexp"

var (
	ptPattern = regexp.MustCompile(`^\d{9}$`)
	ptWeights = []int{9, 8, 7, 6, 5, 4, 3, 2}
)

// validatePT checks a Portuguese NIF.
func validatePT(tin string) bool {
	return matchVariants(tin,
		variant{length: 9, pattern: ptPattern, rule: ptCheckDigit},
	)
}

// ptCheckDigit: a computed value of 10 or 11 both require a trailing 0.
func ptCheckDigit(tin string) bool {
	check := 11 - weightedSum(tin, ptWeights)%11
	if check <= 9 {
		return check == DigitAt(tin, 8)
	}

	return DigitAt(tin, 8) == 0
}
