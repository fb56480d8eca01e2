package validators

import "regexp"

var (
	cyPattern = regexp.MustCompile(`^[0-9]\d{7}[A-Z]$`)
	// cyRecode maps the digits at even offsets before summing.
	cyRecode = [10]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21}
)

// validateCY checks a Cypriot TIC: eight digits followed by a mod 26 letter.
func validateCY(tin string) bool {
	return matchVariants(tin,
		variant{length: 9, pattern: cyPattern, rule: cyCheckLetter},
	)
}

func cyCheckLetter(tin string) bool {
	sum := digitsAt(tin, 1, 3, 5, 7)
	for _, i := range []int{0, 2, 4, 6} {
		sum += cyRecode[DigitAt(tin, i)]
	}

	return byte('A'+sum%26) == tin[8]
}
