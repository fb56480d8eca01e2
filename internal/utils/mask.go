package utils

import "strings"

// visibleTINSuffix is how many trailing characters MaskTIN leaves readable.
const visibleTINSuffix = 3

// MaskTIN replaces all but the last three characters of tin with '*'.
// Inputs of three characters or fewer are masked entirely.
//
//	MaskTIN("DMLPRY77D15H501F") // "*************01F"
func MaskTIN(tin string) string {
	runes := []rune(tin)
	if len(runes) <= visibleTINSuffix {
		return strings.Repeat("*", len(runes))
	}

	keep := len(runes) - visibleTINSuffix
	return strings.Repeat("*", keep) + string(runes[keep:])
}
