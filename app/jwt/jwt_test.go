package jwtutil

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	token, err := s.Issue("alice", time.Hour)
	require.NoError(t, err)

	subject, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestVerifyExpired(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	token, err := s.Issue("alice", time.Nanosecond)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTampered(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	token, err := s.Issue("alice", time.Hour)
	require.NoError(t, err)

	// flip one byte in the payload
	mid := len(token) / 2
	c := byte('A')
	if token[mid] == c {
		c = 'B'
	}
	tampered := token[:mid] + string(c) + token[mid+1:]

	_, err = s.Verify(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	token, err := NewSigner([]byte("right-secret"), "csvvault").Issue("alice", time.Hour)
	require.NoError(t, err)

	_, err = NewSigner([]byte("wrong-secret"), "csvvault").Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformed(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	for _, token := range []string{"", "garbage", "not.a.jwt"} {
		_, err := s.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRejectsMissingExpiry(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	// a token signed with the right secret but no exp claim must not pass
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{Subject: "alice"})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMissingSubject(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = s.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueDefaultTTL(t *testing.T) {
	s := NewSigner([]byte("test-secret"), "csvvault")

	// ttl <= 0 falls back to the 15 minute default, so the token verifies
	token, err := s.Issue("alice", 0)
	require.NoError(t, err)

	subject, err := s.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}
