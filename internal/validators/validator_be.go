package validators

import "regexp"

var bePattern = regexp.MustCompile(`^\d{2}[0-1]\d[0-3]\d{6}$`)

// beCentury is a bit set of the centuries an embedded Belgian birth date is
// valid in.
type beCentury int

const (
	beNoCentury beCentury = 0
	be1900      beCentury = 1
	be2000      beCentury = 2
	beBoth                = be1900 | be2000
)

// validateBE checks a Belgian national number (yymmdd + serial + mod 97).
// People born from 2000 on have "2" prepended before the modulus is taken.
func validateBE(tin string) bool {
	return matchVariants(ClearString(tin),
		variant{length: 11, pattern: bePattern, rule: beCheckDigits},
	)
}

func beCheckDigits(tin string) bool {
	centuries := beBirthCentury(tin)
	if centuries == beNoCentury {
		return false
	}

	base := number(tin[:9])
	check := number(tin[9:11])

	if centuries&be1900 != 0 && 97-base%97 == check {
		return true
	}

	return centuries&be2000 != 0 && 97-(2+base)%97 == check
}

// beBirthCentury reports in which centuries the yymmdd prefix is a valid
// date. An unknown day or month (encoded as 00) is accepted for both.
func beBirthCentury(tin string) beCentury {
	yy, month, day := number(tin[0:2]), number(tin[2:4]), number(tin[4:6])
	if day == 0 || month == 0 {
		return beBoth
	}

	var centuries beCentury
	if IsValidCalendarDate(1900+yy, month, day) {
		centuries |= be1900
	}
	if IsValidCalendarDate(2000+yy, month, day) {
		centuries |= be2000
	}

	return centuries
}
