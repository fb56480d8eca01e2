package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued to an administrator.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for claim access. The subject claim holds the
// admin login.
type Token struct {
	// Token is excluded from JSON: only the compact form leaves the process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS serialization.
	SignedString string `json:"token"`
}

// Login returns the subject claim.
func (t *Token) Login() string {
	return t.Subject
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
