package service

import (
	"context"
	"sync"

	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// --- user repository stub ---

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for id := int64(1); id <= r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Remove(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// --- product repository stub ---

type stubProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
	finds    int // FindByID/FindByName calls, for cache assertions
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*domain.Product)}
}

func cloneProduct(p *domain.Product) *domain.Product {
	if p == nil {
		return nil
	}
	clone := *p
	return &clone
}

func (r *stubProductRepo) FindAll(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, 0, len(r.products))
	for id := int64(1); id <= r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	r.finds++
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return cloneProduct(p), nil
}

func (r *stubProductRepo) FindByName(_ context.Context, normalized string) (*domain.Product, error) {
	r.finds++
	for _, p := range r.products {
		if p.Name == normalized {
			return cloneProduct(p), nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := cloneProduct(p)
	created.ID = r.nextID
	r.products[created.ID] = cloneProduct(created)
	return created, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrProductNotFound
	}
	r.products[p.ID] = cloneProduct(p)
	return nil
}

// --- product cache stub ---

type stubProductCache struct {
	byID   map[int64]*domain.Product
	byName map[string]*domain.Product
}

func newStubProductCache() *stubProductCache {
	return &stubProductCache{
		byID:   make(map[int64]*domain.Product),
		byName: make(map[string]*domain.Product),
	}
}

func (c *stubProductCache) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	return cloneProduct(c.byID[id]), nil
}

func (c *stubProductCache) GetByName(_ context.Context, normalized string) (*domain.Product, error) {
	return cloneProduct(c.byName[normalized]), nil
}

func (c *stubProductCache) Set(_ context.Context, p *domain.Product) error {
	c.byID[p.ID] = cloneProduct(p)
	c.byName[domain.NormalizeProductName(p.Name)] = cloneProduct(p)
	return nil
}

func (c *stubProductCache) Invalidate(_ context.Context, p *domain.Product) error {
	delete(c.byID, p.ID)
	delete(c.byName, domain.NormalizeProductName(p.Name))
	return nil
}

// --- audit sink / repository stubs ---

type captureSink struct {
	mu      sync.Mutex
	entries []ports.AuditEntryInput
}

func (s *captureSink) Enqueue(entry ports.AuditEntryInput) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

func (s *captureSink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Action
	}
	return out
}

type stubAuditRepo struct {
	inserted []*domain.AuditEntry
	fail     error
}

func (r *stubAuditRepo) Insert(_ context.Context, entry *domain.AuditEntry) error {
	if r.fail != nil {
		return r.fail
	}
	r.inserted = append(r.inserted, entry)
	return nil
}
