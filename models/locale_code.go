package models

import "time"

// LocaleCode is an Italian cadastral (Belfiore) code accepted as the
// birthplace segment of a codice fiscale.
type LocaleCode struct {
	Code      string    `json:"code" db:"code" validate:"required,locale_code"`
	Name      string    `json:"name" db:"name" validate:"max=128"`
	CreatedAt time.Time `json:"created_at,omitempty" db:"created_at"`
}

// LocaleCodesRequest replaces the whole locale-code set.
type LocaleCodesRequest struct {
	Codes []LocaleCode `json:"codes" validate:"required,min=1,dive"`
}

// LocaleCodesResponse returns the active locale-code set.
type LocaleCodesResponse struct {
	Codes []LocaleCode `json:"codes"`
	Count int          `json:"count"`
}
