package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Hasher turns client IPs into salted, truncated digests. The salt lives only
// in memory, so hashes cannot be linked across restarts.
type Hasher struct {
	salt string
}

func NewHasher() (*Hasher, error) {
	salt, err := RandomToken()
	if err != nil {
		return nil, err
	}
	return &Hasher{salt: salt}, nil
}

// NewHasherWithSalt is used where stable hashes are needed, such as tests.
func NewHasherWithSalt(salt string) *Hasher {
	return &Hasher{salt: salt}
}

// Hash returns the first 16 hex characters of sha256(ip + salt).
func (h *Hasher) Hash(ip string) string {
	sum := sha256.Sum256([]byte(ip + h.salt))
	return hex.EncodeToString(sum[:])[:16]
}

// RandomToken returns 32 random bytes hex encoded.
func RandomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
