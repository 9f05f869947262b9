package jwtutil

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is the only failure Verify reports. Signature mismatch,
// malformed structure and expiry all collapse into it so callers cannot be
// used as an oracle.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 15 * time.Minute

type Signer struct {
	secret []byte
	issuer string
}

// NewSigner builds a signer around the process-wide secret. The secret comes
// from configuration; it is never compiled in.
func NewSigner(secret []byte, issuer string) *Signer {
	return &Signer{secret: secret, issuer: issuer}
}

// Issue signs a token carrying subject and an expiry of now+ttl. A ttl of
// zero or below falls back to 15 minutes; the login flow passes its own
// configured lifetime instead.
func (s *Signer) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the subject claim.
func (s *Signer) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
