package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Skipper-116/devhub-backend/internal/core/domain"
	"github.com/Skipper-116/devhub-backend/internal/pkg/config"
)

// TokenService issues and verifies HS512-signed session tokens. The
// algorithm is pinned on both sides: a token signed with anything else is
// rejected outright, and tokens without an expiry claim are invalid.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService fails with config.ErrConfig when the secret or TTL is
// unset. This is a startup-time contract; requests never see it.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: JWT_SECRET is not defined", config.ErrConfig)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("%w: JWT_EXPIRES_IN is not defined", config.ErrConfig)
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token whose subject is subjectID.
func (s *TokenService) Issue(subjectID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  subjectID,
		"iat": now.Unix(),
		"exp": now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.secret)
}

// Verify validates signature, algorithm and expiry, and returns the subject
// id. Verification is all-or-nothing; every failure is ErrInvalidToken.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}
