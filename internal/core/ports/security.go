package ports

import "github.com/mitienda/catalog-api/pkg/token"

// PasswordHasher abstracts the one-way credential hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Verify reports whether password matches hash. A mismatch is a
	// plain false, never an error.
	Verify(password, hash string) bool
}

// TokenIssuer mints signed access tokens for an authenticated user.
type TokenIssuer interface {
	Issue(userID int64, name, email, role string) (string, error)
}

// TokenVerifier validates a raw token and recovers its identity claims.
type TokenVerifier interface {
	Verify(tokenString string) (*token.Claims, error)
}
