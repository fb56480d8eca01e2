package validators

import (
	"regexp"
	"slices"
	"strings"
)

var (
	ukUTRPattern  = regexp.MustCompile(`^\d{10}$`)
	ukNINOPattern = regexp.MustCompile(`^[a-ceg-hj-pr-tw-zA-CEG-HJ-PR-TW-Z][a-ceg-hj-npr-tw-zA-CEG-HJ-NPR-TW-Z]\d{6}[abcdABCD ]$`)

	// ukBlockedPrefixes are never allocated as National Insurance prefixes.
	ukBlockedPrefixes = []string{"GB", "NK", "TN", "ZZ"}
)

// validateUK checks a UK UTR (ten digits) or National Insurance number. There
// is no check digit in either scheme. A NINO given without its suffix letter
// is padded with a blank.
func validateUK(tin string) bool {
	s := removeFirst(tin, "/")
	if len(tin) == 8 {
		s += " "
	}

	return matchVariants(s,
		variant{length: 10, pattern: ukUTRPattern},
		variant{length: 9, pattern: ukNINOPattern, rule: ukAllowedPrefix},
	)
}

func ukAllowedPrefix(tin string) bool {
	return !slices.Contains(ukBlockedPrefixes, strings.ToUpper(tin[:2]))
}
