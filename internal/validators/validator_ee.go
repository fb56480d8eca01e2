package validators

import "regexp"

var (
	// personalCodePattern is shared by the Estonian and Lithuanian codes:
	// gender/century digit, yymmdd, serial, check digit.
	personalCodePattern = regexp.MustCompile(`^[1-6]\d{2}[0-1]\d[0-3]\d{5}$`)

	personalCodeWeights      = []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1}
	personalCodeRetryWeights = []int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3}
)

// validateEE checks an Estonian isikukood.
func validateEE(tin string) bool {
	return matchVariants(tin,
		variant{
			length:  11,
			pattern: personalCodePattern,
			date:    personalCodeBirthDate,
			rule:    allOf(eeSerialInRange, personalCodeCheckDigit),
		},
	)
}

func eeSerialInRange(tin string) bool {
	return InOpenRange(number(tin[7:10]), 0, 711)
}

func personalCodeBirthDate(tin string) bool {
	return validInAnyCentury(number(tin[1:3]), number(tin[3:5]), number(tin[5:7]), 1900, 2000)
}

// personalCodeCheckDigit retries with the second weight vector when the first
// pass leaves remainder 10. A second remainder of 10 maps to check digit 0.
func personalCodeCheckDigit(tin string) bool {
	check := DigitAt(tin, 10)

	remainder := weightedSum(tin, personalCodeWeights) % 11
	if remainder != 10 {
		return remainder == check
	}

	remainder = weightedSum(tin, personalCodeRetryWeights) % 11
	if remainder == 10 {
		return check == 0
	}

	return remainder == check
}
