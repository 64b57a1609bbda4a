package utils

import (
	"math/rand"
	"sync"

	"github.com/pkg/errors"
)

const (
	// TokenPrefix starts every patient token.
	TokenPrefix = "PAT"

	tokenAlphabet    = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	tokenLength      = 6
	maxTokenAttempts = 64
)

// ErrTokenCollision is returned when no unused token was drawn within the attempt budget.
var ErrTokenCollision = errors.New("could not generate an unused patient token")

// RandomSource is a goroutine-safe wrapper around math/rand.
type RandomSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomSource returns a RandomSource seeded with seed.
func NewRandomSource(seed int64) *RandomSource {
	return &RandomSource{rnd: rand.New(rand.NewSource(seed))}
}

// Float64 returns a pseudo-random number in [0.0, 1.0).
func (s *RandomSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

// Intn returns a pseudo-random number in [0, n).
func (s *RandomSource) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Intn(n)
}

// GenerateToken returns "PAT" followed by six uppercase base-36 digits taken
// from a random fraction. Candidates already present in existing are redrawn.
func GenerateToken(rnd *RandomSource, existing map[string]struct{}) (string, error) {
	for i := 0; i < maxTokenAttempts; i++ {
		token := tokenFromFraction(rnd.Float64())
		if _, taken := existing[token]; !taken {
			return token, nil
		}
	}
	return "", ErrTokenCollision
}

func tokenFromFraction(f float64) string {
	buf := make([]byte, 0, len(TokenPrefix)+tokenLength)
	buf = append(buf, TokenPrefix...)
	for i := 0; i < tokenLength; i++ {
		f *= float64(len(tokenAlphabet))
		digit := int(f)
		if digit >= len(tokenAlphabet) {
			digit = len(tokenAlphabet) - 1
		}
		f -= float64(digit)
		buf = append(buf, tokenAlphabet[digit])
	}
	return string(buf)
}
