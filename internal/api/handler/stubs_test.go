package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

// newTestContext builds an echo context with the request validator wired,
// matching what the router installs in production.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req = httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error)
	loginFn    func(ctx context.Context, input ports.LoginInput) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, input ports.LoginInput) (string, error) {
	return s.loginFn(ctx, input)
}

type stubUserService struct {
	findAllFn  func(ctx context.Context) ([]*domain.User, error)
	findByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	createFn   func(ctx context.Context, input ports.CreateUserInput) (*domain.User, error)
	updateFn   func(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error)
	removeFn   func(ctx context.Context, id int64) error
}

func (s *stubUserService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.findAllFn(ctx)
}

func (s *stubUserService) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, input)
}

func (s *stubUserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubUserService) Remove(ctx context.Context, id int64) error {
	return s.removeFn(ctx, id)
}

type stubProductService struct {
	findAllFn    func(ctx context.Context) ([]*domain.Product, error)
	findByIDFn   func(ctx context.Context, id int64) (*domain.Product, error)
	findByNameFn func(ctx context.Context, name string) (*domain.Product, error)
	createFn     func(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error)
	updateFn     func(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error)
	disableFn    func(ctx context.Context, id int64) error
}

func (s *stubProductService) FindAll(ctx context.Context) ([]*domain.Product, error) {
	return s.findAllFn(ctx)
}

func (s *stubProductService) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubProductService) FindByName(ctx context.Context, name string) (*domain.Product, error) {
	return s.findByNameFn(ctx, name)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	return s.createFn(ctx, input)
}

func (s *stubProductService) Update(ctx context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
	return s.updateFn(ctx, id, input)
}

func (s *stubProductService) Disable(ctx context.Context, id int64) error {
	return s.disableFn(ctx, id)
}
