package validators

import "errors"

var (
	// ErrUnknownCountry is returned when a TIN is validated against a country
	// code that has no registered validator. It signals a caller bug and is
	// never produced for malformed TINs.
	ErrUnknownCountry = errors.New("no validator for country")

	// ErrNegativeNumber is returned by the digit helpers when they receive a
	// negative operand.
	ErrNegativeNumber = errors.New("number must not be negative")

	// ErrInvalidLocaleCodes is returned when a locale-code document cannot be
	// decoded or contains no usable codes.
	ErrInvalidLocaleCodes = errors.New("invalid locale codes")
)
