package validators

import "regexp"

var dePattern = regexp.MustCompile(`^[1-9]\d{10}$`)

// validateDE checks a German Steuerliche Identifikationsnummer. Among the
// first ten digits either exactly one digit repeats (twice, or three times
// but never three in a row) and the check digit follows one of two
// recurrences.
func validateDE(tin string) bool {
	s := removeFirst(tin, "/")

	return matchVariants(s,
		variant{
			length:  11,
			pattern: dePattern,
			shape:   anyOf(deSingleRepetition, deBoundedRepetition),
			rule:    anyOf(deProductRecurrence, deISO7064),
		},
	)
}

func deDigitCounts(tin string) [10]int {
	var counts [10]int
	for i := 0; i < 10; i++ {
		counts[DigitAt(tin, i)]++
	}

	return counts
}

// deSingleRepetition: at most one digit occurs twice and exactly one digit
// is missing.
func deSingleRepetition(tin string) bool {
	twice, missing := false, false
	for _, n := range deDigitCounts(tin) {
		if n == 2 {
			if twice {
				return false
			}
			twice = true
		}
		if n == 0 {
			if missing {
				return false
			}
			missing = true
		}
	}

	return missing
}

// deBoundedRepetition: no digit three times in a row, none more than three
// times, and exactly one digit occurring twice or three times.
func deBoundedRepetition(tin string) bool {
	for i := 0; i < 8; i++ {
		if tin[i] == tin[i+1] && tin[i+1] == tin[i+2] {
			return false
		}
	}

	twice, thrice := false, false
	for _, n := range deDigitCounts(tin) {
		switch {
		case n > 3:
			return false
		case n == 3:
			if thrice {
				return false
			}
			thrice = true
		case n == 2:
			if twice {
				return false
			}
			twice = true
		}
	}

	return twice || thrice
}

func deProductRecurrence(tin string) bool {
	product := DigitAt(tin, 0) % 10
	if product == 0 {
		product = 10
	}
	product = (product * 2) % 11

	for i := 1; i < 10; i++ {
		product = (product + DigitAt(tin, i)) % 10
		if product == 0 {
			product = 10
		}
		product = (product * 2) % 11
	}

	check := 11 - product
	if check == 10 {
		return DigitAt(tin, 10) == 0
	}

	return check == DigitAt(tin, 10)
}

func deISO7064(tin string) bool {
	mod11 := 10
	for i := 0; i < len(tin)-1; i++ {
		mod10 := (DigitAt(tin, i) + mod11) % 10
		if mod10 == 0 {
			mod10 = 10
		}
		mod11 = (2 * mod10) % 11
	}

	check := 11 - mod11
	if check == 10 {
		check = 0
	}

	return check == DigitAt(tin, 10)
}
