package pkg

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// GenerateMatchID - generates a unique identifier for a match.
func GenerateMatchID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(99999999))
	if err != nil {
		return "", fmt.Errorf("failed to generate match id: %w", err)
	}

	return n.String(), nil
}
