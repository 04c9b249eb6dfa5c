package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// PasswordPolicy decides how passwords are written and checked.
//
// Rows have historically been stored in plaintext and compared by equality.
// With Hash set, new passwords are stored as bcrypt hashes; verification
// accepts both forms so existing rows keep working.
type PasswordPolicy struct {
	Hash bool
}

// Encode returns the value to store for password.
func (p PasswordPolicy) Encode(password string) (string, error) {
	if !p.Hash {
		return password, nil
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Matches reports whether submitted corresponds to the stored value.
func (p PasswordPolicy) Matches(stored, submitted string) bool {
	if isBcryptHash(stored) {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(submitted)) == nil
	}
	return stored == submitted
}

func isBcryptHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}
