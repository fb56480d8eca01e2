package validators

import "regexp"

var fiPattern = regexp.MustCompile(`^[0-3]\d[0-1]\d{3}[+\-A]\d{3}[0-9A-Z]$`)

// fiCheckCharacters indexes the remainder modulo 31.
const fiCheckCharacters = "0123456789ABCDEFHJKLMNPRSTUVWXY"

// validateFI checks a Finnish henkilötunnus, "ddmmyyCnnnX" where C encodes
// the century: '+' 1800s, '-' 1900s, 'A' 2000s.
func validateFI(tin string) bool {
	return matchVariants(tin,
		variant{length: 11, pattern: fiPattern, date: fiBirthDate, rule: fiCheckCharacter},
	)
}

func fiBirthDate(tin string) bool {
	day, month, yy := number(tin[0:2]), number(tin[2:4]), number(tin[4:6])

	switch tin[6] {
	case '+':
		return IsValidCalendarDate(1800+yy, month, day)
	case '-':
		return IsValidCalendarDate(1900+yy, month, day)
	case 'A':
		return IsValidCalendarDate(2000+yy, month, day)
	default:
		return false
	}
}

func fiCheckCharacter(tin string) bool {
	n := number(tin[0:6] + tin[7:10])

	return fiCheckCharacters[n%31] == tin[10]
}
