package utils

import (
	"crypto/rand"
	"time"

	"github.com/o1egl/paseto"
	"github.com/pkg/errors"
)

const symmetricKeyLength = 32

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrSessionTokenExpired = errors.New("session token expired")
)

// SessionClaims is the data carried in a session token.
type SessionClaims struct {
	SessionID string    `json:"sessionId"`
	Expiry    time.Time `json:"expiry"`
}

// SessionTokens issues and validates PASETO v2 local session tokens.
type SessionTokens struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSessionTokens returns a SessionTokens using a 32 byte symmetric key.
func NewSessionTokens(key []byte, ttl time.Duration) (*SessionTokens, error) {
	if len(key) != symmetricKeyLength {
		return nil, errors.Errorf("symmetric key must be %d bytes long, got %d", symmetricKeyLength, len(key))
	}
	return &SessionTokens{key: key, ttl: ttl, now: time.Now}, nil
}

// SymmetricKey returns the configured key, or a random one when none is configured.
// The second return value reports whether the key was generated.
func SymmetricKey(configured string) ([]byte, bool, error) {
	if configured != "" {
		if len(configured) != symmetricKeyLength {
			return nil, false, errors.Errorf("SYMMETRIC_KEY must be %d bytes long. Current length: %d", symmetricKeyLength, len(configured))
		}
		return []byte(configured), false, nil
	}
	key := make([]byte, symmetricKeyLength)
	if _, err := rand.Read(key); err != nil {
		return nil, false, errors.Wrap(err, "failed to generate symmetric key")
	}
	return key, true, nil
}

// TTL is the lifetime of issued tokens.
func (t *SessionTokens) TTL() time.Duration {
	return t.ttl
}

// Generate encrypts a token for the given session.
func (t *SessionTokens) Generate(sessionID string) (string, error) {
	claims := SessionClaims{
		SessionID: sessionID,
		Expiry:    t.now().Add(t.ttl),
	}
	token, err := paseto.NewV2().Encrypt(t.key, claims, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate session token")
	}
	return token, nil
}

// Validate decrypts token and checks its expiry.
func (t *SessionTokens) Validate(token string) (*SessionClaims, error) {
	var claims SessionClaims
	if err := paseto.NewV2().Decrypt(token, t.key, &claims, nil); err != nil {
		return nil, errors.Wrap(ErrInvalidSessionToken, err.Error())
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidSessionToken
	}
	if t.now().After(claims.Expiry) {
		return nil, ErrSessionTokenExpired
	}
	return &claims, nil
}
