package validators

import "regexp"

// Validator is a pure predicate over a raw TIN.
type Validator func(tin string) bool

// variant is one accepted structural format of a national scheme. A scheme
// that changed over time (or accepts several lengths) lists its variants in
// order and the first one whose structure matches decides the outcome.
type variant struct {
	length  int
	pattern *regexp.Regexp
	// shape holds structural constraints a regular expression cannot express.
	shape func(tin string) bool
	date  func(tin string) bool
	rule  func(tin string) bool
}

func (v variant) matches(tin string) bool {
	if len(tin) != v.length {
		return false
	}
	if v.pattern != nil && !v.pattern.MatchString(tin) {
		return false
	}

	return v.shape == nil || v.shape(tin)
}

func (v variant) holds(tin string) bool {
	if v.date != nil && !v.date(tin) {
		return false
	}

	return v.rule == nil || v.rule(tin)
}

// matchVariants evaluates the first structurally matching variant and
// reports false when none matches.
func matchVariants(tin string, variants ...variant) bool {
	for _, v := range variants {
		if v.matches(tin) {
			return v.holds(tin)
		}
	}

	return false
}

// allOf combines check rules with AND.
func allOf(rules ...func(string) bool) func(string) bool {
	return func(tin string) bool {
		for _, rule := range rules {
			if !rule(tin) {
				return false
			}
		}

		return true
	}
}

// anyOf combines check rules with OR.
func anyOf(rules ...func(string) bool) func(string) bool {
	return func(tin string) bool {
		for _, rule := range rules {
			if rule(tin) {
				return true
			}
		}

		return false
	}
}
