package validators

import (
	"regexp"
	"strings"
)

var (
	sePersonalPattern     = regexp.MustCompile(`^\d{2}[0-1]\d[0-3]\d{5}$`)
	seCoordinationPattern = regexp.MustCompile(`^\d{2}[0-1]\d[6-9]\d{5}$`)

	seLongPersonalPattern     = regexp.MustCompile(`^(1[89]|20)\d{2}(0[1-9]|1[012])(0[1-9]|[1-2][0-9]|3[0-1])\d{4}$`)
	seLongCoordinationPattern = regexp.MustCompile(`^(1[89]|20)\d{2}(0[1-9]|1[012])(6[1-9]|[7-8][0-9]|9[0-1])\d{4}$`)
)

// coordinationDayOffset is added to the day of birth in coordination numbers.
const coordinationDayOffset = 60

// validateSE checks a Swedish personnummer or samordningsnummer in the short
// (yymmdd-nnnc) or long (yyyymmddnnnc) form.
func validateSE(tin string) bool {
	s := strings.Replace(removeFirst(tin, "-"), "+", "", 1)

	return matchVariants(s,
		variant{length: 10, pattern: sePersonalPattern, date: seShortBirthDate(0), rule: seLuhn(0)},
		variant{length: 10, pattern: seCoordinationPattern, date: seShortBirthDate(coordinationDayOffset), rule: seLuhn(0)},
		variant{length: 12, pattern: seLongPersonalPattern, date: seLongBirthDate(0), rule: seLuhn(2)},
		variant{length: 12, pattern: seLongCoordinationPattern, date: seLongBirthDate(coordinationDayOffset), rule: seLuhn(2)},
	)
}

func seShortBirthDate(dayOffset int) func(string) bool {
	return func(tin string) bool {
		return validInAnyCentury(number(tin[0:2]), number(tin[2:4]), number(tin[4:6])-dayOffset, 1900, 2000)
	}
}

func seLongBirthDate(dayOffset int) func(string) bool {
	return func(tin string) bool {
		return IsValidCalendarDate(number(tin[0:4]), number(tin[4:6]), number(tin[6:8])-dayOffset)
	}
}

// seLuhn verifies the Luhn digit over the ten digits starting at from; the
// long form skips the century.
func seLuhn(from int) func(string) bool {
	return func(tin string) bool {
		doubled, err := doubledDigitSum(tin, from, from+2, from+4, from+6, from+8)
		if err != nil {
			return false
		}

		unit, err := LastDigit(digitsAt(tin, from+1, from+3, from+5, from+7) + doubled)
		if err != nil {
			return false
		}

		check := 10 - unit
		if check == 10 {
			check = 0
		}

		return DigitAt(tin, from+9) == check
	}
}
