package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// SessionTTL matches the one-day session cookies the portal issues.
const SessionTTL = 24 * time.Hour

var ErrInvalidSession = errors.New("session token is invalid or expired")

// SessionManager signs and verifies the HS256 tokens stored in the session
// cookie. The subject claim carries the admin id.
type SessionManager struct {
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(secret string) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    SessionTTL,
	}
}

func (m *SessionManager) Issue(adminId string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   adminId,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(m.secret)
}

// Verify returns the admin id the token was issued for.
func (m *SessionManager) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return m.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}

	return claims.Subject, nil
}

func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}
