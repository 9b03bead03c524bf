package ports

import (
	"context"

	"github.com/mitienda/catalog-api/internal/core/domain"
)

// ProductRepository defines persistence operations for the product catalog.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	// FindByName matches the stored name exactly against the already
	// normalized (trimmed, uppercased) input.
	FindByName(ctx context.Context, normalized string) (*domain.Product, error)
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
}

// ProductCache is a read-through cache in front of the product repository.
// Implementations must treat a miss as (nil, nil).
type ProductCache interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	GetByName(ctx context.Context, normalized string) (*domain.Product, error)
	Set(ctx context.Context, p *domain.Product) error
	Invalidate(ctx context.Context, p *domain.Product) error
}
