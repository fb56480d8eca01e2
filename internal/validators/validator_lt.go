package validators

// validateLT checks a Lithuanian asmens kodas. It shares the layout and the
// two-pass check digit with the Estonian code but has no serial range.
func validateLT(tin string) bool {
	return matchVariants(tin,
		variant{
			length:  11,
			pattern: personalCodePattern,
			shape:   ltMonthAndDay,
			date:    personalCodeBirthDate,
			rule:    personalCodeCheckDigit,
		},
	)
}

func ltMonthAndDay(tin string) bool {
	month, day := number(tin[3:5]), number(tin[5:7])
	return InOpenRange(month, 0, 13) && InOpenRange(day, 0, 32)
}
