package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService issues and validates signed bearer tokens. It is
// stateless: a token is a pure function of the secret key and the
// clock, so no server-side session table is needed and instances scale
// horizontally. The validity window bounds the damage of a leaked token.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService with the given signing secret
// and validity window.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed token whose subject is the principal's email.
func (t *TokenService) Issue(email string) (string, error) {
	now := t.now()

	claims := jwt.RegisteredClaims{
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry and returns the subject email.
// Failures map to ErrTokenExpired, ErrTokenMalformed or ErrTokenInvalid.
func (t *TokenService) Validate(tokenString string) (string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{},
		func(token *jwt.Token) (interface{}, error) {
			return t.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", fmt.Errorf("validate token: %w", ErrTokenExpired)
		case errors.Is(err, jwt.ErrTokenMalformed):
			return "", fmt.Errorf("validate token: %w", ErrTokenMalformed)
		default:
			return "", fmt.Errorf("validate token: %w", ErrTokenInvalid)
		}
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("validate token: %w", ErrTokenInvalid)
	}

	return claims.Subject, nil
}
