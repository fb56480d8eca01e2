package validators

import (
	_ "embed"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locale_codes.yaml
var defaultLocaleCodesYAML []byte

// LocaleCode is one entry of a locale-code document.
type LocaleCode struct {
	Code string `yaml:"code" json:"code"`
	Name string `yaml:"name" json:"name"`
}

type localeCodesDocument struct {
	Codes []LocaleCode `yaml:"codes"`
}

// LocaleCodes is an immutable, case-insensitive set of Italian birthplace
// codes. The zero value is an empty set.
type LocaleCodes struct {
	codes map[string]string
}

// NewLocaleCodes builds a set from bare codes.
func NewLocaleCodes(codes ...string) LocaleCodes {
	entries := make([]LocaleCode, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, LocaleCode{Code: code})
	}

	return NewLocaleCodesFromEntries(entries)
}

// NewLocaleCodesFromEntries builds a set from named entries. Blank codes are
// skipped; a later duplicate overwrites the name of an earlier one.
func NewLocaleCodesFromEntries(entries []LocaleCode) LocaleCodes {
	set := LocaleCodes{codes: make(map[string]string, len(entries))}
	for _, e := range entries {
		code := strings.ToUpper(strings.TrimSpace(e.Code))
		if code == "" {
			continue
		}
		set.codes[code] = e.Name
	}

	return set
}

// LoadLocaleCodes decodes a YAML document of the form
//
//	codes:
//	  - {code: H501, name: Roma}
func LoadLocaleCodes(r io.Reader) (LocaleCodes, error) {
	var doc localeCodesDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return LocaleCodes{}, fmt.Errorf("%w: %w", ErrInvalidLocaleCodes, err)
	}

	set := NewLocaleCodesFromEntries(doc.Codes)
	if set.Len() == 0 {
		return LocaleCodes{}, fmt.Errorf("%w: document has no codes", ErrInvalidLocaleCodes)
	}

	return set, nil
}

// DefaultLocaleCodes returns the bundled set.
func DefaultLocaleCodes() LocaleCodes {
	set, err := LoadLocaleCodes(strings.NewReader(string(defaultLocaleCodesYAML)))
	if err != nil {
		panic(fmt.Sprintf("bundled locale codes are broken: %v", err))
	}

	return set
}

// Contains reports whether code is in the set, ignoring case.
func (l LocaleCodes) Contains(code string) bool {
	_, ok := l.codes[strings.ToUpper(code)]
	return ok
}

// Len returns the number of codes.
func (l LocaleCodes) Len() int {
	return len(l.codes)
}

// Entries returns the set sorted by code.
func (l LocaleCodes) Entries() []LocaleCode {
	entries := make([]LocaleCode, 0, len(l.codes))
	for _, code := range slices.Sorted(maps.Keys(l.codes)) {
		entries = append(entries, LocaleCode{Code: code, Name: l.codes[code]})
	}

	return entries
}
