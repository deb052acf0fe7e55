package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when the caller does not override the lifetime.
const DefaultTokenTTL = 30 * time.Minute

// Token validation errors. All three surface to clients as 401; they are kept
// distinct for diagnostics.
var (
	ErrTokenExpired          = errors.New("token expired")
	ErrTokenInvalidSignature = errors.New("token signature invalid")
	ErrTokenMalformed        = errors.New("token malformed")
)

// TokenService issues and validates HS256 session tokens. Tokens assert only a
// subject and an expiry: role is deliberately not embedded so that role changes
// take effect on the next request rather than at token renewal.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue builds a signed token asserting subject, expiring after ttl.
// A non-positive ttl falls back to the service's configured lifetime.
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = s.ttl
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate verifies the signature and expiry and returns the asserted subject.
func (s *TokenService) Validate(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrTokenInvalidSignature
		default:
			return "", ErrTokenMalformed
		}
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", ErrTokenMalformed
	}
	return claims.Subject, nil
}
