// Package token issues and verifies signed, time-limited access tokens.
//
// Tokens are HS256 JWTs signed with a process-wide secret loaded once at
// startup. There is no revocation: a token stays valid until its expiry.
package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, or natural expiry.
var ErrInvalidToken = errors.New("invalid token")

const defaultTTL = 24 * time.Hour

// Claims is the signed payload carried by an access token.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim back into the numeric user id.
func (c *Claims) UserID() int64 {
	id, _ := strconv.ParseInt(c.Subject, 10, 64)
	return id
}

// Service signs and verifies access tokens with a shared secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService builds a Service. A non-positive ttl falls back to 24h.
func NewService(secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token for the given identity using the configured default TTL.
func (s *Service) Issue(userID int64, name, email, role string) (string, error) {
	return s.IssueWithTTL(userID, name, email, role, s.ttl)
}

// IssueWithTTL mints a token whose absolute expiry is now+ttl. A zero or
// negative ttl produces an already-expired token.
func (s *Service) IssueWithTTL(userID int64, name, email, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Name:  name,
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates tokenString, returning its claims.
// Any failure — wrong signature, malformed structure, expired — surfaces
// as ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
