package validators

import "regexp"

var luPattern = regexp.MustCompile(`^(1[89]|20)\d{2}(0[1-9]|1[012])(0[1-9]|[1-2][0-9]|3[0-1])\d{5}$`)

// Verhoeff dihedral group multiplication and position permutation tables.
var (
	verhoeffD = [10][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 2, 3, 4, 0, 6, 7, 8, 9, 5},
		{2, 3, 4, 0, 1, 7, 8, 9, 5, 6},
		{3, 4, 0, 1, 2, 8, 9, 5, 6, 7},
		{4, 0, 1, 2, 3, 9, 5, 6, 7, 8},
		{5, 9, 8, 7, 6, 0, 4, 3, 2, 1},
		{6, 5, 9, 8, 7, 1, 0, 4, 3, 2},
		{7, 6, 5, 9, 8, 2, 1, 0, 4, 3},
		{8, 7, 6, 5, 9, 3, 2, 1, 0, 4},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}
	verhoeffP = [8][10]int{
		{0, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		{1, 5, 7, 6, 2, 8, 3, 0, 9, 4},
		{5, 8, 0, 3, 7, 9, 6, 1, 4, 2},
		{8, 9, 1, 6, 0, 4, 3, 5, 2, 7},
		{9, 4, 5, 3, 1, 2, 6, 8, 7, 0},
		{4, 2, 8, 6, 5, 7, 3, 9, 0, 1},
		{2, 7, 9, 3, 8, 0, 6, 4, 1, 5},
		{7, 0, 4, 6, 9, 1, 3, 2, 5, 8},
	}
)

// validateLU checks a Luxembourg matricule, "yyyymmddnnnCC". The first check
// digit (position 12) is a Luhn digit, the second a Verhoeff digit; both must
// hold.
func validateLU(tin string) bool {
	return matchVariants(tin,
		variant{
			length:  13,
			pattern: luPattern,
			date:    luBirthDate,
			rule:    allOf(luLuhn, luVerhoeff),
		},
	)
}

func luBirthDate(tin string) bool {
	return IsValidCalendarDate(number(tin[0:4]), number(tin[4:6]), number(tin[6:8]))
}

func luLuhn(tin string) bool {
	doubled, err := doubledDigitSum(tin, 0, 2, 4, 6, 8, 10)
	if err != nil {
		return false
	}

	return (digitsAt(tin, 1, 3, 5, 7, 9, 11)+doubled)%10 == 0
}

// luVerhoeff runs the Verhoeff check over the digits right to left, leaving
// out the Luhn digit at position 11.
func luVerhoeff(tin string) bool {
	check, step := 0, 0
	for i := 12; i >= 0; i-- {
		if i == 11 {
			continue
		}
		check = verhoeffD[check][verhoeffP[step%8][DigitAt(tin, i)]]
		step++
	}

	return check == 0
}
