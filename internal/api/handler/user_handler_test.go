package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/mitienda/catalog-api/internal/core/domain"
	"github.com/mitienda/catalog-api/internal/core/ports"
)

func TestUserHandlerList(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		findAllFn: func(context.Context) ([]*domain.User, error) {
			return []*domain.User{
				{ID: 1, Name: "Ana", Email: "ana@example.com", PasswordHash: "$2a$10$abc", Role: domain.RoleAdmin},
				{ID: 2, Name: "Luis", Email: "luis@example.com", PasswordHash: "$2a$10$def", Role: domain.RoleUser},
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/users", "")
	if err := h.List(c); err != nil {
		t.Fatalf("List: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp) != 2 {
		t.Fatalf("expected 2 users, got %d", len(resp))
	}
	if strings.Contains(rec.Body.String(), "$2a$") {
		t.Error("password hash leaked into the response")
	}
}

func TestUserHandlerCreate(t *testing.T) {
	var got ports.CreateUserInput
	h := NewUserHandler(&stubUserService{
		createFn: func(_ context.Context, input ports.CreateUserInput) (*domain.User, error) {
			got = input
			return &domain.User{ID: 1, Name: input.Name, Email: input.Email, Role: domain.RoleAdmin}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/users",
		`{"name":"Ana","email":"ana@example.com","password":"secret1","role":"admin"}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got.Role != domain.RoleAdmin {
		t.Errorf("role not forwarded: %+v", got)
	}
}

func TestUserHandlerCreateInvalidRole(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called on invalid payloads")
			return nil, nil
		},
	})

	c, _ := newTestContext(http.MethodPost, "/users",
		`{"name":"Ana","email":"ana@example.com","password":"secret1","role":"superadmin"}`)
	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestUserHandlerUpdatePartial(t *testing.T) {
	var got ports.UpdateUserInput
	h := NewUserHandler(&stubUserService{
		updateFn: func(_ context.Context, id int64, input ports.UpdateUserInput) (*domain.User, error) {
			got = input
			return &domain.User{ID: id, Name: "Ana Maria", Email: "ana@example.com", Role: domain.RoleUser}, nil
		},
	})

	c, rec := newTestContext(http.MethodPut, "/users/1", `{"name":"Ana Maria"}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Name == nil || *got.Name != "Ana Maria" {
		t.Errorf("name not forwarded: %+v", got)
	}
	if got.Email != nil || got.Password != nil || got.Role != nil || got.Age != nil {
		t.Errorf("omitted fields should stay nil: %+v", got)
	}
}

func TestUserHandlerGetNotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		findByIDFn: func(context.Context, int64) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	})

	c, _ := newTestContext(http.MethodGet, "/users/42", "")
	c.SetParamNames("id")
	c.SetParamValues("42")

	if err := h.Get(c); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound to propagate, got %v", err)
	}
}

func TestUserHandlerRemove(t *testing.T) {
	removed := int64(0)
	h := NewUserHandler(&stubUserService{
		removeFn: func(_ context.Context, id int64) error {
			removed = id
			return nil
		},
	})

	c, rec := newTestContext(http.MethodDelete, "/users/2", "")
	c.SetParamNames("id")
	c.SetParamValues("2")

	if err := h.Remove(c); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected Remove(2), got %d", removed)
	}
	if !strings.Contains(rec.Body.String(), "user deleted") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
