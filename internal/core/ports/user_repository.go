package ports

import (
	"context"

	"github.com/mitienda/catalog-api/internal/core/domain"
)

// UserRepository defines persistence operations for the user directory.
// Create assigns the server-generated id and must surface
// domain.ErrEmailTaken on a duplicate email.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Remove(ctx context.Context, id int64) error
}
