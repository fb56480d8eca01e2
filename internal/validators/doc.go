// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements the national TIN (Tax Identification Number)
// schemes supported by go-tin-keeper.
//
// Every country is served by a single pure predicate (a [Validator]) that
// normalizes the raw input, checks the structural variants accepted by the
// issuing authority, verifies embedded birth dates where the scheme encodes
// one and finally recomputes the check digit(s).
//
// Validators are collected into an immutable [Registry]. Callers either build
// their own registry with [NewRegistry] or use the process-wide default via
// [Validate]. The only replaceable piece of state is the Italian locale-code
// set, see [ReplaceLocaleCodes].
//
// Usage:
//
//	ok, err := validators.Validate("26954371827", validators.DE)
//	if errors.Is(err, validators.ErrUnknownCountry) {
//	    // caller bug: country is not supported
//	}
package validators
