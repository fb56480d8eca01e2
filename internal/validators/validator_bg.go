package validators

import "regexp"

var (
	bgPattern = regexp.MustCompile(`^\d{10}$`)
	bgWeights = []int{2, 4, 8, 5, 10, 9, 7, 3, 6}
)

// validateBG checks a Bulgarian EGN. The month field carries the century:
// +20 for the 1800s, +40 for the 2000s.
func validateBG(tin string) bool {
	return matchVariants(tin,
		variant{length: 10, pattern: bgPattern, date: bgBirthDate, rule: bgCheckDigit},
	)
}

func bgBirthDate(tin string) bool {
	yy, month, day := number(tin[0:2]), number(tin[2:4]), number(tin[4:6])

	switch {
	case month >= 21 && month <= 32:
		return IsValidCalendarDate(1800+yy, month-20, day)
	case month >= 41 && month <= 52:
		return IsValidCalendarDate(2000+yy, month-40, day)
	default:
		return IsValidCalendarDate(1900+yy, month, day)
	}
}

func bgCheckDigit(tin string) bool {
	remainder := weightedSum(tin, bgWeights) % 11
	if remainder == 10 {
		return DigitAt(tin, 9) == 0
	}

	return remainder == DigitAt(tin, 9)
}
