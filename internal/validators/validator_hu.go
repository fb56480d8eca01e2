package validators

import "regexp"

var (
	huPattern = regexp.MustCompile(`^8\d{9}$`)
	huWeights = []int{1, 2, 3, 4, 5, 6, 7, 8, 9}
)

// validateHU checks a Hungarian adóazonosító jel.
func validateHU(tin string) bool {
	return matchVariants(tin,
		variant{length: 10, pattern: huPattern, rule: huCheckDigit},
	)
}

func huCheckDigit(tin string) bool {
	return weightedSum(tin, huWeights)%11 == DigitAt(tin, 9)
}
