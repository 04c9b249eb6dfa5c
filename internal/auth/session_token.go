package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenService signs the session cookie value. The cookie carries only
// the session id, as the JWT ID claim; the session itself lives in the store.
type SessionTokenService struct {
	secret []byte
}

// NewSessionTokenService creates a signer with the given secret.
func NewSessionTokenService(secret string) *SessionTokenService {
	return &SessionTokenService{secret: []byte(secret)}
}

// Issue returns a signed token naming sessionID. A non-positive ttl yields a
// token without expiry.
func (s *SessionTokenService) Issue(sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		ID:        sessionID,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// SigningKey is the HMAC key cookies are verified with.
func (s *SessionTokenService) SigningKey() []byte {
	return s.secret
}
