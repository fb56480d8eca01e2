package validators

import "regexp"

var (
	ieThreadPattern = regexp.MustCompile(`^\d{7}[a-wA-W]([a-iA-I]|W)$`)
	iePlainPattern  = regexp.MustCompile(`^\d{7}[a-wA-W]$`)
	ieWeights       = []int{8, 7, 6, 5, 4, 3, 2}
)

// validateIE checks an Irish PPSN: seven digits, a check letter and an
// optional trailing letter that takes part in the checksum with weight 9.
func validateIE(tin string) bool {
	return matchVariants(tin,
		variant{length: 9, pattern: ieThreadPattern, rule: ieCheckLetter},
		variant{length: 8, pattern: iePlainPattern, rule: ieCheckLetter},
	)
}

func ieCheckLetter(tin string) bool {
	sum := weightedSum(tin, ieWeights)
	if len(tin) == 9 {
		sum += 9 * ieSuffixValue(tin[8])
	}

	remainder := sum % 23
	check := upper(tin[7])
	if remainder == 0 {
		return check == 'W'
	}

	return check == byte('A'+remainder-1)
}

// ieSuffixValue maps W to 0 and A..I to 1..9.
func ieSuffixValue(c byte) int {
	c = upper(c)
	if c == 'W' {
		return 0
	}

	return int(c-'A') + 1
}
