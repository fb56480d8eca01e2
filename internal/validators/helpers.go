package validators

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ClearString drops every character that is not an ASCII letter or digit.
func ClearString(s string) string {
	return nonAlphanumeric.ReplaceAllString(s, "")
}

// DigitAt returns the numeric value of the character at position i.
// The caller guarantees that s[i] is an ASCII digit.
func DigitAt(s string, i int) int {
	return int(s[i] - '0')
}

// IsLeapYear applies the Gregorian leap-year rule.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// LastDayOfMonth returns the number of days in month of year, or 0 when
// month is outside 1..12.
func LastDayOfMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}

	return daysInMonth[month]
}

// IsValidCalendarDate reports whether year-month-day is a real Gregorian date.
func IsValidCalendarDate(year, month, day int) bool {
	return month >= 1 && month <= 12 && day >= 1 && day <= LastDayOfMonth(month, year)
}

// validInAnyCentury reports whether the two-digit year yy forms a valid date
// with month and day in at least one of the given centuries.
func validInAnyCentury(yy, month, day int, centuries ...int) bool {
	for _, century := range centuries {
		if IsValidCalendarDate(century+yy, month, day) {
			return true
		}
	}

	return false
}

// DigitSum returns the sum of the decimal digits of n.
func DigitSum(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeNumber
	}

	sum := 0
	for ; n > 0; n /= 10 {
		sum += n % 10
	}

	return sum, nil
}

// LastDigit returns n % 10.
func LastDigit(n int) (int, error) {
	if n < 0 {
		return 0, ErrNegativeNumber
	}

	return n % 10, nil
}

// InOpenRange reports whether lo < v < hi. Both bounds are excluded.
func InOpenRange(v, lo, hi int) bool {
	return v > lo && v < hi
}

// number parses a run of ASCII digits. Callers only pass substrings that
// already matched a digit pattern.
func number(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}

	return n
}

// weightedSum returns Σ digit(s[i]) * weights[i] for i < len(weights).
func weightedSum(s string, weights []int) int {
	sum := 0
	for i, w := range weights {
		sum += DigitAt(s, i) * w
	}

	return sum
}

// doubledDigitSum sums the digit sums of twice each digit at the given
// positions, the doubling step shared by the Luhn-like schemes.
func doubledDigitSum(s string, positions ...int) (int, error) {
	sum := 0
	for _, i := range positions {
		ds, err := DigitSum(2 * DigitAt(s, i))
		if err != nil {
			return 0, err
		}
		sum += ds
	}

	return sum, nil
}

// digitsAt sums the plain digits at the given positions.
func digitsAt(s string, positions ...int) int {
	sum := 0
	for _, i := range positions {
		sum += DigitAt(s, i)
	}

	return sum
}

// removeFirst deletes the first occurrence of sep from s.
func removeFirst(s, sep string) string {
	return strings.Replace(s, sep, "", 1)
}
