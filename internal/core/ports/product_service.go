package ports

import (
	"context"

	"github.com/mitienda/catalog-api/internal/core/domain"
)

// CreateProductInput carries the fields needed to create a product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

// UpdateProductInput is the create shape plus the explicit status flag,
// applied as a full-object replace.
type UpdateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Status      bool
}

// ProductService defines use-case operations over the product catalog.
// Disable is the soft-delete: it flips status to false and keeps the record.
type ProductService interface {
	FindAll(ctx context.Context) ([]*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, id int64, input UpdateProductInput) (*domain.Product, error)
	Disable(ctx context.Context, id int64) error
}
