package validators

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_IsTotal verifies that every enumerated country has a validator.
func TestRegistry_IsTotal(t *testing.T) {
	r := NewRegistry()

	codes := Countries()
	require.Len(t, codes, 23)
	for _, code := range codes {
		assert.True(t, r.Supports(code), "missing validator for %s", code)
	}
	assert.Len(t, r.validators, len(codes))
}

// TestRegistry_EmptyTIN verifies that an empty TIN is invalid without error,
// even for countries the registry does not know.
func TestRegistry_EmptyTIN(t *testing.T) {
	r := NewRegistry()

	for _, code := range append(Countries(), "XX", "") {
		ok, err := r.Validate("", code)
		assert.NoError(t, err, code)
		assert.False(t, ok, code)
	}
}

// TestRegistry_UnknownCountry verifies that an unknown code is reported as an
// error and never as an invalid TIN.
func TestRegistry_UnknownCountry(t *testing.T) {
	r := NewRegistry()

	for _, code := range []CountryCode{"XX", "GB", "de", "D", "DEU"} {
		ok, err := r.Validate("26954371827", code)
		require.Error(t, err, code)
		assert.True(t, errors.Is(err, ErrUnknownCountry))
		assert.Contains(t, err.Error(), string(code))
		assert.False(t, ok)
	}
}

func TestRegistry_Idempotent(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 3; i++ {
		ok, err := r.Validate("DMLPRY77D15H501F", IT)
		require.NoError(t, err)
		assert.True(t, ok)
	}
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for country, cases := range countryCases {
				for _, tc := range cases {
					got, err := r.Validate(tc.tin, country)
					assert.NoError(t, err)
					assert.Equal(t, tc.valid, got)
				}
			}
		}()
	}
	wg.Wait()
}

// TestRegistry_WithLocaleCodes verifies that the Italian validator only
// accepts birthplaces from the injected set.
func TestRegistry_WithLocaleCodes(t *testing.T) {
	milanOnly := NewRegistry(WithLocaleCodes(NewLocaleCodes("F205")))
	ok, err := milanOnly.Validate("DMLPRY77D15H501F", IT)
	require.NoError(t, err)
	assert.False(t, ok, "H501 is not in the injected set")

	rome := NewRegistry(WithLocaleCodes(NewLocaleCodes("h501")))
	ok, err = rome.Validate("DMLPRY77D15H501F", IT)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, 1, rome.LocaleCodes().Len())
}

func TestRecovering_MapsPanicToInvalid(t *testing.T) {
	v := recovering(func(tin string) bool {
		return tin[100] == 'x'
	})

	assert.False(t, v("short"))
}

// TestReplaceLocaleCodes verifies the process-wide replace semantics: the
// last call wins and an earlier registry keeps its own set.
func TestReplaceLocaleCodes(t *testing.T) {
	original := Default()
	t.Cleanup(func() { defaultRegistry.Store(original) })

	ok, err := Validate("DMLPRY77D15H501F", IT)
	require.NoError(t, err)
	require.True(t, ok)

	ReplaceLocaleCodes(NewLocaleCodes("F205"))
	ReplaceLocaleCodes(NewLocaleCodes("F205", "L219"))

	ok, err = Validate("DMLPRY77D15H501F", IT)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 2, Default().LocaleCodes().Len())

	ok, err = original.Validate("DMLPRY77D15H501F", IT)
	require.NoError(t, err)
	assert.True(t, ok, "registries are immutable once built")
}

func TestParseCountryCode(t *testing.T) {
	code, err := ParseCountryCode(" de ")
	require.NoError(t, err)
	assert.Equal(t, DE, code)
	assert.Equal(t, "Germany", code.Name())

	code, err = ParseCountryCode(" xx")
	assert.ErrorIs(t, err, ErrUnknownCountry)
	assert.Equal(t, CountryCode("XX"), code, "unknown codes are still normalized")
	assert.EqualError(t, err, `no validator for country "XX"`)

	_, err = ParseCountryCode("")
	assert.ErrorIs(t, err, ErrUnknownCountry)
}

func TestCountries_Sorted(t *testing.T) {
	codes := Countries()
	assert.True(t, slices.IsSorted(codes))
	assert.Equal(t, AT, codes[0])
	assert.Equal(t, US, codes[len(codes)-1])
}

// TestRegistry_Countries verifies the registry lists exactly the enumerated
// countries, in order.
func TestRegistry_Countries(t *testing.T) {
	assert.Equal(t, Countries(), NewRegistry().Countries())
}
