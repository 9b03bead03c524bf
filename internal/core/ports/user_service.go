package ports

import (
	"context"

	"github.com/mitienda/catalog-api/internal/core/domain"
)

// CreateUserInput carries the admin-create payload. Role is optional and
// defaults to domain.RoleUser.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Age      *int
	Role     string
}

// UpdateUserInput uses pointer fields for partial overwrite: nil fields are
// left unchanged. A non-nil Password is re-hashed before persisting.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	Age      *int
	Role     *string
}

// UserService defines use-case operations over the user directory.
type UserService interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, id int64, input UpdateUserInput) (*domain.User, error)
	Remove(ctx context.Context, id int64) error
}
