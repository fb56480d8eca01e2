package validators

import "regexp"

var (
	siPattern = regexp.MustCompile(`^[1-9]\d{7}$`)
	siWeights = []int{8, 7, 6, 5, 4, 3, 2}
)

// validateSI checks a Slovenian davčna številka.
func validateSI(tin string) bool {
	return matchVariants(tin,
		variant{length: 8, pattern: siPattern, rule: allOf(siInRange, siCheckDigit)},
	)
}

func siInRange(tin string) bool {
	return InOpenRange(number(tin[:7]), 999999, 10000000)
}

func siCheckDigit(tin string) bool {
	check := 11 - weightedSum(tin, siWeights)%11
	last := DigitAt(tin, 7)

	return last == check || (check == 10 && last == 0)
}
