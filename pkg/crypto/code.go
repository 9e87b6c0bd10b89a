package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default bcrypt cost
	DefaultCost = 12
	// CodeLength is the number of digits in an SMS login code
	CodeLength = 4
)

var (
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	randInt                    = rand.Int
)

// GenerateNumericCode generates a random n-digit numeric code
func GenerateNumericCode(n int) (string, error) {
	max := big.NewInt(1)
	for i := 0; i < n; i++ {
		max.Mul(max, big.NewInt(10))
	}
	v, err := randInt(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%0*d", n, v), nil
}

// HashCode hashes an SMS code using bcrypt
func HashCode(code string) (string, error) {
	bytes, err := bcryptGenerateFromPassword([]byte(code), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash code: %w", err)
	}
	return string(bytes), nil
}

// CheckCode compares a code with a hash
func CheckCode(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
