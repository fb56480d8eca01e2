package validators

import "regexp"

var hrPattern = regexp.MustCompile(`^\d{11}$`)

// validateHR checks a Croatian OIB (ISO 7064 MOD 11,10).
func validateHR(tin string) bool {
	return matchVariants(ClearString(tin),
		variant{length: 11, pattern: hrPattern, rule: hrCheckDigit},
	)
}

func hrCheckDigit(tin string) bool {
	sum := DigitAt(tin, 0) + 10
	rest := 0
	for i := 1; i < 11; i++ {
		rest = sum % 10
		if rest == 0 {
			rest = 10
		}
		rest = (rest * 2) % 11
		sum = rest + DigitAt(tin, i)
	}

	last := DigitAt(tin, 10)

	return (rest == 1 && last == 0) || last == 11-rest
}
