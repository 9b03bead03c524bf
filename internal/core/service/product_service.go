package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/mitienda/catalog-api/internal/api/metrics"
	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// ProductService implements catalog CRUD with a read-through cache.
// Deletion is a soft-disable: the record stays, status flips to false.
type ProductService struct {
	repo   ports.ProductRepository
	cache  ports.ProductCache
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, cache ports.ProductCache, audit ports.AuditSink, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, audit: audit, logger: logger}
}

func (s *ProductService) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.FindAll(ctx)
}

func (s *ProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	if p := s.cacheGet(ctx, func(c ports.ProductCache) (*domain.Product, error) {
		return c.GetByID(ctx, id)
	}); p != nil {
		return p, nil
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, p)
	return p, nil
}

// FindByName looks up a product by its normalized (trimmed, uppercased)
// name; the match against the stored name is exact after normalization.
func (s *ProductService) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	normalized := domain.NormalizeProductName(name)
	if normalized == "" {
		return nil, domain.ErrProductNotFound
	}

	if p := s.cacheGet(ctx, func(c ports.ProductCache) (*domain.Product, error) {
		return c.GetByName(ctx, normalized)
	}); p != nil {
		return p, nil
	}

	p, err := s.repo.FindByName(ctx, normalized)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, p)
	return p, nil
}

func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Price < 0 || input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Stock:       input.Stock,
		Status:      true,
	})
	if err != nil {
		return nil, err
	}

	metrics.ProductsCreatedTotal.Inc()
	s.logger.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	s.recordAudit(ctx, "product.create", created.ID)

	return created, nil
}

// Update is a full-object replace of the mutable fields, status included.
func (s *ProductService) Update(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Price < 0 || input.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, product)

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Stock = input.Stock
	product.Status = input.Status

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	s.recordAudit(ctx, "product.update", id)

	return product, nil
}

// Disable soft-deletes the product by flipping status to false.
func (s *ProductService) Disable(ctx context.Context, id int64) error {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	s.cacheInvalidate(ctx, product)

	product.Status = false
	if err := s.repo.Update(ctx, product); err != nil {
		return err
	}

	metrics.ProductsDisabledTotal.Inc()
	s.logger.Info().Int64("product_id", id).Msg("product disabled")
	s.recordAudit(ctx, "product.disable", id)

	return nil
}

// Cache failures never fail the request; they are logged and the read
// falls through to the repository.

func (s *ProductService) cacheGet(ctx context.Context, get func(ports.ProductCache) (*domain.Product, error)) *domain.Product {
	if s.cache == nil {
		return nil
	}
	p, err := get(s.cache)
	if err != nil {
		s.logger.Warn().Err(err).Msg("product cache read failed")
		return nil
	}
	return p
}

func (s *ProductService) cacheSet(ctx context.Context, p *domain.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, p); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", p.ID).Msg("product cache write failed")
	}
}

func (s *ProductService) cacheInvalidate(ctx context.Context, p *domain.Product) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, p); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", p.ID).Msg("product cache invalidation failed")
	}
}

func (s *ProductService) recordAudit(ctx context.Context, action string, id int64) {
	s.audit.Enqueue(ports.AuditEntryInput{
		Actor:     actorFrom(ctx),
		Action:    action,
		Entity:    "product",
		EntityID:  id,
		Timestamp: time.Now().UTC(),
	})
}
