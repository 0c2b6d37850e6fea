package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const (
	// TemporaryTokenSize is the number of random bytes behind a temporary
	// token. Hex encoding doubles it to 64 characters.
	TemporaryTokenSize = 32

	// TemporaryTokenTTL is how long an emailed token stays usable.
	TemporaryTokenTTL = 20 * time.Minute
)

// TemporaryToken is a one-time secret for email verification and password
// reset. Plain goes to the user exactly once; only Hash is persisted.
type TemporaryToken struct {
	Plain     string
	Hash      string
	ExpiresAt time.Time
}

// GenerateTemporaryToken creates a random token that expires ttl from now.
// A non-positive ttl means TemporaryTokenTTL.
func GenerateTemporaryToken(ttl time.Duration) (TemporaryToken, error) {
	if ttl <= 0 {
		ttl = TemporaryTokenTTL
	}

	buf := make([]byte, TemporaryTokenSize)
	if _, err := rand.Read(buf); err != nil {
		return TemporaryToken{}, fmt.Errorf("cryptox: generate temporary token: %w", err)
	}

	plain := hex.EncodeToString(buf)
	return TemporaryToken{
		Plain:     plain,
		Hash:      HashTemporaryToken(plain),
		ExpiresAt: time.Now().UTC().Add(ttl),
	}, nil
}

// HashTemporaryToken is the SHA-256 hex digest stored in place of the token.
// A fast hash is fine here since the input carries 256 bits of entropy.
func HashTemporaryToken(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}
