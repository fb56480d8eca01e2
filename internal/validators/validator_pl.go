package validators

import "regexp"

var (
	plNIPPattern   = regexp.MustCompile(`^\d{10}$`)
	plPESELPattern = regexp.MustCompile(`^\d{11}$`)

	plNIPWeights   = []int{6, 5, 7, 2, 3, 4, 5, 6, 7}
	plPESELWeights = []int{1, 3, 7, 9, 1, 3, 7, 9, 1, 3}
)

// validatePL checks a Polish NIP (10 digits) or PESEL (11 digits). The PESEL
// month carries the century in steps of 20.
func validatePL(tin string) bool {
	return matchVariants(tin,
		variant{length: 10, pattern: plNIPPattern, rule: plNIPCheckDigit},
		variant{length: 11, pattern: plPESELPattern, date: plPESELBirthDate, rule: plPESELCheckDigit},
	)
}

func plNIPCheckDigit(tin string) bool {
	remainder := weightedSum(tin, plNIPWeights) % 11
	if remainder == 10 {
		return false
	}

	return remainder == DigitAt(tin, 9)
}

// plPESELCheckDigit compares against 10 - (sum mod 10) without reducing it,
// so a sum divisible by ten never validates.
func plPESELCheckDigit(tin string) bool {
	return DigitAt(tin, 10) == 10-weightedSum(tin, plPESELWeights)%10
}

func plPESELBirthDate(tin string) bool {
	yy, month, day := number(tin[0:2]), number(tin[2:4]), number(tin[4:6])

	switch {
	case month >= 1 && month <= 12:
		return IsValidCalendarDate(1900+yy, month, day)
	case month >= 21 && month <= 32:
		return IsValidCalendarDate(2000+yy, month-20, day)
	case month >= 41 && month <= 52:
		return IsValidCalendarDate(2100+yy, month-40, day)
	case month >= 61 && month <= 72:
		return IsValidCalendarDate(2200+yy, month-60, day)
	case month >= 81 && month <= 92:
		return IsValidCalendarDate(1800+yy, month-80, day)
	default:
		return false
	}
}
