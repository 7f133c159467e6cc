// Package cryptox implements the credential-derivation scheme shared by the
// client and the identity service: the password never leaves the client, only
// an argon2id-derived verifier does.
package cryptox

import (
	"crypto/sha256"

	"golang.org/x/crypto/argon2"
)

// DeriveCredentialKey derives a key from (password, salt) with argon2id.
// Both sides must use identical parameters or verifiers will not match.
func DeriveCredentialKey(password []byte, salt []byte) []byte {
	return argon2.IDKey(password, salt, 1, 64*1024, 4, 32)
}

// MakeVerifier hashes the derived key into the value stored server-side and
// presented during login.
func MakeVerifier(key []byte) []byte {
	hash := sha256.Sum256(key)
	return hash[:]
}
