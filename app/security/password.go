// Package security wraps the one-way password hash used for stored
// credentials.
package security

import "golang.org/x/crypto/bcrypt"

// HashPassword returns a salted bcrypt hash. Two calls with the same
// plaintext produce different strings.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches hash. A malformed hash is
// just a mismatch, never an error path.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
