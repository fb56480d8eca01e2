package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	countryCodePattern = regexp.MustCompile(`^[A-Za-z]{2}$`)
	localeCodePattern  = regexp.MustCompile(`^[A-Za-z]\d{3}$`)
)

// Custom tags of the request models. They must not collide with the
// validator's built-in tags and aliases (it already ships an ISO 3166
// "country_code" alias that would take precedence).
const (
	tagTINCountry = "tin_country"
	tagLocaleCode = "locale_code"
)

// newRequestValidator registers the custom tags used by the request models.
// tin_country checks the shape only, case-insensitively; whether the country
// is supported is decided by the service so that it can answer 422.
func newRequestValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	patterns := map[string]*regexp.Regexp{
		tagTINCountry: countryCodePattern,
		tagLocaleCode: localeCodePattern,
	}
	for tag, pattern := range patterns {
		err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return pattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})
		if err != nil {
			return nil, fmt.Errorf("registering %q validation: %w", tag, err)
		}
	}

	return v, nil
}

// decodeAndValidate reads a JSON body into dst and runs the struct tags.
func (h *Handler) decodeAndValidate(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: body exceeds %d bytes", errRequestTooLarge, tooLarge.Limit)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", errRequestValidation, validationMessage(err))
	}

	return nil
}

// validationMessage flattens validator errors into "field: tag" pairs.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		parts = append(parts, fmt.Sprintf("%s: failed on '%s'", field, fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
