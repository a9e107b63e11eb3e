package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the hashing cost for stored credentials
const BcryptCost = 12

// HashPassword hashes a plaintext password for storage
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}

// InitialPassword derives the deterministic first-login password issued with a
// freshly generated identifier. The plaintext is emailed exactly once and never
// stored; only the hash persists.
func InitialPassword(identifier string) string {
	return fmt.Sprintf("Welcome@%s", identifier)
}
