package user

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces a salted bcrypt digest. Cost comes from config
// (BCRYPT_SALTROUND).
func HashPassword(plaintext string, cost int) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plaintext), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// CheckPassword compares plaintext against a stored digest. Returns nil on
// match; bcrypt's comparison is constant time.
func CheckPassword(digest, plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
}
