package validators

import "regexp"

var atPattern = regexp.MustCompile(`^\d{9}$`)

// validateAT checks an Austrian tax number (Steuernummer), e.g. "93-173/6581".
func validateAT(tin string) bool {
	return matchVariants(ClearString(tin),
		variant{length: 9, pattern: atPattern, rule: atCheckDigit},
	)
}

func atCheckDigit(tin string) bool {
	doubled, err := doubledDigitSum(tin, 1, 3, 5, 7)
	if err != nil {
		return false
	}

	check, err := LastDigit(100 - (digitsAt(tin, 0, 2, 4, 6) + doubled))
	if err != nil {
		return false
	}

	return check == DigitAt(tin, 8)
}
