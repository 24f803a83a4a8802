package secret

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// charset matches the character classes Entra ID accepts for an initial
// password: lowercase, uppercase, digits and a set of symbols.
const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*()-_+="

// DefaultLength is the length used for initial passwords on account creation.
const DefaultLength = 32

// Generate returns a cryptographically random password of the given length.
// Each character is drawn uniformly from the fixed charset.
func Generate(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("invalid password length: %d", length)
	}

	max := big.NewInt(int64(len(charset)))
	buf := make([]byte, length)

	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to read random bytes: %w", err)
		}
		buf[i] = charset[n.Int64()]
	}

	return string(buf), nil
}
