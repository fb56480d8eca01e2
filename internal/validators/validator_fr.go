package validators

import "regexp"

var frPattern = regexp.MustCompile(`^[0-3]\d{12}$`)

// validateFR checks a French numéro fiscal (SPI). The last three digits hold
// the first ten modulo 511; the comparison width follows the magnitude of the
// remainder, so a remainder below 10 is compared with the last digit only and
// one below 100 with the last two.
func validateFR(tin string) bool {
	return matchVariants(ClearString(tin),
		variant{length: 13, pattern: frPattern, rule: frCheckDigits},
	)
}

func frCheckDigits(tin string) bool {
	remainder := number(tin[:10]) % 511

	var check int
	switch {
	case remainder < 10:
		check = number(tin[12:13])
	case remainder < 100:
		check = number(tin[11:13])
	default:
		check = number(tin[10:13])
	}

	return remainder == check
}
