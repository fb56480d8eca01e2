package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks administrator password hashes.
//
// Hashes are self-describing argon2id strings in the PHC format, so the
// tuning parameters travel with the hash and can be raised without
// invalidating existing configuration:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<salt>$<key>
type PasswordHasher interface {
	// Hash derives a new hash for password with a fresh random salt.
	Hash(password string) (string, error)

	// Verify reports whether password matches encodedHash. A malformed
	// hash is an error; a well-formed hash that does not match is
	// (false, nil).
	Verify(password, encodedHash string) (bool, error)
}
