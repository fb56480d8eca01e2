package crypto

import "errors"

// ErrInvalidHash is returned when an encoded hash is not a well-formed
// argon2id PHC string.
var ErrInvalidHash = errors.New("invalid argon2id hash")

// ErrIncompatibleVersion is returned for hashes produced by a different
// argon2 revision.
var ErrIncompatibleVersion = errors.New("incompatible argon2 version")
