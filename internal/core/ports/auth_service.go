package ports

import (
	"context"
)

// RegisterInput carries the self-service registration payload.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
}

// RegisterResult deliberately exposes only non-sensitive fields.
type RegisterResult struct {
	ID    int64
	Email string
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// AuthService orchestrates registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	Login(ctx context.Context, input LoginInput) (string, error)
}
