package validators

import (
	"regexp"
	"strings"
)

var (
	dkPattern = regexp.MustCompile(`^[0-3]\d[0-1]\d{3}\d{4}$`)
	dkWeights = []int{4, 3, 2, 7, 6, 5, 4, 3, 2}
)

// validateDK checks a Danish CPR number, "ddmmyy-ssss".
func validateDK(tin string) bool {
	return matchVariants(strings.ReplaceAll(tin, "-", ""),
		variant{length: 10, pattern: dkPattern, date: dkBirthDate, rule: dkCheckDigit},
	)
}

func dkBirthDate(tin string) bool {
	return validInAnyCentury(number(tin[4:6]), number(tin[2:4]), number(tin[0:2]), 1900, 2000)
}

func dkCheckDigit(tin string) bool {
	yy, serial := number(tin[4:6]), number(tin[6:10])
	if yy >= 37 && yy <= 57 && serial >= 5000 && serial <= 8999 {
		return false
	}

	remainder := weightedSum(tin, dkWeights) % 11
	switch remainder {
	case 1:
		return false
	case 0:
		return DigitAt(tin, 9) == 0
	default:
		return DigitAt(tin, 9) == 11-remainder
	}
}
