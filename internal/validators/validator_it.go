package validators

import (
	"regexp"
	"strings"
)

var itPattern = regexp.MustCompile(`^[a-zA-Z]{6}[LMNPQRSTUVlmnpqrstuv0-9]{2}[ABCDEHLMPRSTabcdehlmprst]([0Ll][1-9]|[1Mm2Nn4Qq5Rr6Ss][0-9]|[3Pp7Tt][0-1])[a-zA-Z][LMNPQRSTUVlmnpqrstuv0-9]{3}[a-zA-Z]$`)

// Omocodia: when two people would share a code, digits are replaced by
// these letters starting from the right.
const omocodiaLetters = "LMNPQRSTUV"

// itMonthLetters holds the month letters in calendar order.
const itMonthLetters = "ABCDEHLMPRST"

// Values of characters at odd (1-based) positions, indexed by digit or
// letter offset.
var (
	itOddDigits  = [10]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21}
	itOddLetters = [26]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21, 2, 4, 18, 20, 11, 3, 6, 8, 12, 14, 16, 10, 22, 25, 24, 23}
)

// newItalyValidator builds the codice fiscale validator. The birthplace
// segment (letter + three digits) must be one of codes.
func newItalyValidator(codes LocaleCodes) Validator {
	locale := func(tin string) bool {
		return codes.Contains(tin[11:12] + deomocodia(tin[12:15]))
	}

	return func(tin string) bool {
		return matchVariants(tin,
			variant{
				length:  16,
				pattern: itPattern,
				shape:   locale,
				date:    itBirthDate,
				rule:    itCheckLetter,
			},
		)
	}
}

// deomocodia maps omocodia letters back to digits and keeps everything else.
func deomocodia(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if idx := strings.IndexByte(omocodiaLetters, upper(s[i])); idx >= 0 {
			b.WriteByte(byte('0' + idx))
			continue
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

// itBirthDate decodes yy (6..7), the month letter (8) and the day (9..10).
// Women have 40 added to the day.
func itBirthDate(tin string) bool {
	month := strings.IndexByte(itMonthLetters, upper(tin[8])) + 1
	yy := number(deomocodia(tin[6:8]))
	day := number(deomocodia(tin[9:11]))

	switch {
	case day >= 1 && day <= 31:
		return validInAnyCentury(yy, month, day, 1900, 2000)
	case day >= 41 && day <= 71:
		return validInAnyCentury(yy, month, day-40, 1900, 2000)
	default:
		return false
	}
}

func itCheckLetter(tin string) bool {
	sum := 0
	for i := 0; i < 15; i++ {
		c := upper(tin[i])
		if i%2 == 0 {
			sum += itOddValue(c)
		} else {
			sum += itEvenValue(c)
		}
	}

	return byte('A'+sum%26) == upper(tin[15])
}

func itOddValue(c byte) int {
	if c >= '0' && c <= '9' {
		return itOddDigits[c-'0']
	}

	return itOddLetters[c-'A']
}

func itEvenValue(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}

	return int(c - 'A')
}
