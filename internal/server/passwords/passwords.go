// Package passwords wraps bcrypt hashing and verification for stored user
// credentials. The salt is embedded in the produced hash string, so no
// separate salt column is needed.
package passwords

import "golang.org/x/crypto/bcrypt"

// Hash derives a salted bcrypt hash from the plaintext password.
func Hash(plaintext string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// yields false, never an error: callers treat every mismatch identically.
func Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
