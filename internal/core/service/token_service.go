package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bookstore/bookstore-api/internal/core/domain"
)

const defaultTokenTTL = 30 * time.Minute

// TokenService issues and verifies HS256-signed identity tokens. The signing
// key is fixed for the lifetime of the service and safe for concurrent reads.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue produces a signed token with subject=username, issued now and
// expiring after the configured lifetime.
func (s *TokenService) Issue(username string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Validate fails closed: it returns false when the signature is invalid, the
// payload is malformed, the subject does not match expectedUsername, or the
// token is expired. No leeway is applied to the expiration check.
func (s *TokenService) Validate(token, expectedUsername string) bool {
	subject, err := s.ExtractSubject(token)
	if err != nil {
		return false
	}
	return subject == expectedUsername
}

// ExtractSubject verifies the token signature and standard claims (including
// expiry) and returns the subject.
func (s *TokenService) ExtractSubject(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse token: %w", err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
