package auth

import (
	"crypto/rand"
	"math/big"
)

const passwordChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"

// GenerateRandomPassword builds a random initial password for employee
// accounts using crypto/rand.
func GenerateRandomPassword(length int) (string, error) {
	if length <= 0 {
		length = 10
	}

	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordChars))))
		if err != nil {
			return "", err
		}
		result[i] = passwordChars[n.Int64()]
	}

	return string(result), nil
}
