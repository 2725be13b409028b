package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt hashes look like $2a$10$<22 char salt><31 char digest>.
const bcryptSaltPrefixLen = 29

var ErrPasswordMismatch = errors.New("password mismatch")

// HashPassword returns the bcrypt hash of password together with the salt
// prefix embedded in it.
func HashPassword(password string, cost int) (hash, salt string, err error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", "", err
	}
	hash = string(b)
	return hash, hash[:bcryptSaltPrefixLen], nil
}

// ComparePassword checks password against hash in constant time.
func ComparePassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrPasswordMismatch
	}
	return nil
}
