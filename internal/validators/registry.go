package validators

import (
	"fmt"
	"slices"
	"sync/atomic"
)

// Registry maps every supported country to its validator. A Registry is
// immutable once built and safe for concurrent use.
type Registry struct {
	validators  map[CountryCode]Validator
	localeCodes LocaleCodes
}

// Option configures a Registry under construction.
type Option func(*registryOptions)

type registryOptions struct {
	localeCodes LocaleCodes
}

// WithLocaleCodes sets the Italian birthplace codes. Without it the bundled
// set from DefaultLocaleCodes is used.
func WithLocaleCodes(codes LocaleCodes) Option {
	return func(o *registryOptions) {
		o.localeCodes = codes
	}
}

// NewRegistry builds a registry covering every code returned by Countries.
func NewRegistry(opts ...Option) *Registry {
	var o registryOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.localeCodes.codes == nil {
		o.localeCodes = DefaultLocaleCodes()
	}

	validators := map[CountryCode]Validator{
		AT: validateAT,
		BE: validateBE,
		BG: validateBG,
		CY: validateCY,
		DE: validateDE,
		DK: validateDK,
		EE: validateEE,
		ES: validateES,
		FI: validateFI,
		FR: validateFR,
		HR: validateHR,
		HU: validateHU,
		IE: validateIE,
		IT: newItalyValidator(o.localeCodes),
		LT: validateLT,
		LU: validateLU,
		NL: validateNL,
		PL: validatePL,
		PT: validatePT,
		SE: validateSE,
		SI: validateSI,
		UK: validateUK,
		US: validateUS,
	}
	for code, v := range validators {
		validators[code] = recovering(v)
	}

	return &Registry{validators: validators, localeCodes: o.localeCodes}
}

// recovering turns a panic inside a validator into an invalid result.
func recovering(v Validator) Validator {
	return func(tin string) (ok bool) {
		defer func() {
			if recover() != nil {
				ok = false
			}
		}()

		return v(tin)
	}
}

// Validate checks tin against the scheme of country. An empty tin is invalid
// for every country, known or not. A country without a validator yields
// ErrUnknownCountry; a malformed tin never produces an error.
func (r *Registry) Validate(tin string, country CountryCode) (bool, error) {
	if tin == "" {
		return false, nil
	}

	v, ok := r.validators[country]
	if !ok {
		return false, fmt.Errorf("%w %q", ErrUnknownCountry, string(country))
	}

	return v(tin), nil
}

// Supports reports whether the registry has a validator for country.
func (r *Registry) Supports(country CountryCode) bool {
	_, ok := r.validators[country]
	return ok
}

// Countries returns the codes the registry has validators for, sorted.
func (r *Registry) Countries() []CountryCode {
	codes := make([]CountryCode, 0, len(r.validators))
	for code := range r.validators {
		codes = append(codes, code)
	}
	slices.Sort(codes)

	return codes
}

// LocaleCodes returns the Italian birthplace codes the registry was built with.
func (r *Registry) LocaleCodes() LocaleCodes {
	return r.localeCodes
}

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(NewRegistry())
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry.Load()
}

// Validate checks tin with the process-wide registry.
func Validate(tin string, country CountryCode) (bool, error) {
	return Default().Validate(tin, country)
}

// ReplaceLocaleCodes swaps the process-wide registry for one built with
// codes. The last call wins; validations already in flight finish with the
// registry they started with.
func ReplaceLocaleCodes(codes LocaleCodes) {
	defaultRegistry.Store(NewRegistry(WithLocaleCodes(codes)))
}
