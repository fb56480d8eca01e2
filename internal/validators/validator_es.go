package validators

import (
	"regexp"
	"strings"
)

var (
	// esNationalPattern matches a DNI: eight digits and a check letter.
	esNationalPattern = regexp.MustCompile(`^\d{8}[a-zA-Z]$`)
	// esForeignPattern matches a NIE (X/Y/Z) or a K/L/M number.
	esForeignPattern = regexp.MustCompile(`^[XYZKLMxyzklm]\d{7}[a-zA-Z]$`)
)

const esCheckLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// validateES checks a Spanish DNI/NIE. Short inputs are left-padded with
// zeros, so "(000)54237A" and "54237A" are the same number.
func validateES(tin string) bool {
	s := ClearString(tin)
	if len(s) < 9 {
		s = strings.Repeat("0", 9-len(s)) + s
	}

	return matchVariants(s,
		variant{length: 9, pattern: esNationalPattern, rule: esNationalCheckLetter},
		variant{length: 9, pattern: esForeignPattern, rule: esForeignCheckLetter},
	)
}

func esNationalCheckLetter(tin string) bool {
	return esCheckLetter(number(tin[:8]), tin[8])
}

func esForeignCheckLetter(tin string) bool {
	var prefix int
	switch tin[0] {
	case 'K', 'L', 'M', 'X', 'k', 'l', 'm', 'x':
		prefix = 0
	case 'Y', 'y':
		prefix = 1
	case 'Z', 'z':
		prefix = 2
	default:
		return false
	}

	return esCheckLetter(prefix*10_000_000+number(tin[1:8]), tin[8])
}

func esCheckLetter(n int, letter byte) bool {
	return esCheckLetters[n%23] == upper(letter)
}

// upper folds an ASCII lower-case letter.
func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}
