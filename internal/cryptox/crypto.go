// Package cryptox derives and verifies stored account credentials.
//
// The scheme is deterministic: argon2id over the password with the
// installation-wide secret as a fixed salt. Identical passwords therefore
// produce identical credentials across accounts. Deployments that need real
// secrecy must switch to a per-account random salt.
package cryptox

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/argon2"
)

const (
	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

// DefaultSecret is the secret used when none is configured.
const DefaultSecret = "salt123"

// DeriveCredential returns the hex encoded credential for password.
func DeriveCredential(password, secret string) string {
	key := argon2.IDKey([]byte(password), []byte(secret), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// VerifyCredential recomputes the credential for password and compares it
// with stored in constant time.
func VerifyCredential(password, stored, secret string) bool {
	candidate := DeriveCredential(password, secret)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(stored)) == 1
}
