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

func TestProductHandlerGetByName(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		findByNameFn: func(_ context.Context, name string) (*domain.Product, error) {
			if name != "perro" {
				t.Errorf("expected raw path value, got %q", name)
			}
			return &domain.Product{ID: 1, Name: "PERRO", Price: 9.99, Stock: 10, Status: true}, nil
		},
	})

	c, rec := newTestContext(http.MethodGet, "/products/by-name/perro", "")
	c.SetParamNames("name")
	c.SetParamValues("perro")

	if err := h.GetByName(c); err != nil {
		t.Fatalf("GetByName: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp productResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Name != "PERRO" {
		t.Errorf("unexpected product: %+v", resp)
	}
}

func TestProductHandlerGetByNameNotFound(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		findByNameFn: func(context.Context, string) (*domain.Product, error) {
			return nil, domain.ErrProductNotFound
		},
	})

	c, _ := newTestContext(http.MethodGet, "/products/by-name/perros", "")
	c.SetParamNames("name")
	c.SetParamValues("perros")

	if err := h.GetByName(c); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound to propagate, got %v", err)
	}
}

func TestProductHandlerCreate(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		createFn: func(_ context.Context, input ports.CreateProductInput) (*domain.Product, error) {
			return &domain.Product{
				ID:          1,
				Name:        input.Name,
				Description: input.Description,
				Price:       input.Price,
				Stock:       input.Stock,
				Status:      true,
			}, nil
		},
	})

	c, rec := newTestContext(http.MethodPost, "/products",
		`{"name":"PERRO","description":"juguete","price":9.99,"stock":10}`)
	if err := h.Create(c); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp productResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != 1 || !resp.Status {
		t.Errorf("unexpected product: %+v", resp)
	}
}

func TestProductHandlerCreateValidation(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		createFn: func(context.Context, ports.CreateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called on invalid payloads")
			return nil, nil
		},
	})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"description":"x","price":1,"stock":1}`},
		{"missing description", `{"name":"X","price":1,"stock":1}`},
		{"negative price", `{"name":"X","description":"x","price":-1,"stock":1}`},
		{"negative stock", `{"name":"X","description":"x","price":1,"stock":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTestContext(http.MethodPost, "/products", tc.body)
			err := h.Create(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", httpErr.Code)
			}
		})
	}
}

func TestProductHandlerUpdate(t *testing.T) {
	var got ports.UpdateProductInput
	h := NewProductHandler(&stubProductService{
		updateFn: func(_ context.Context, id int64, input ports.UpdateProductInput) (*domain.Product, error) {
			got = input
			return &domain.Product{
				ID:          id,
				Name:        input.Name,
				Description: input.Description,
				Price:       input.Price,
				Stock:       input.Stock,
				Status:      input.Status,
			}, nil
		},
	})

	// status false must survive the round trip, not be dropped as a zero value
	c, rec := newTestContext(http.MethodPut, "/products/1",
		`{"name":"GATO","description":"renombrado","price":19.99,"stock":5,"status":false}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got.Status {
		t.Error("explicit status=false was not forwarded")
	}
	if got.Name != "GATO" {
		t.Errorf("unexpected input: %+v", got)
	}
}

func TestProductHandlerUpdateMissingStatus(t *testing.T) {
	h := NewProductHandler(&stubProductService{
		updateFn: func(context.Context, int64, ports.UpdateProductInput) (*domain.Product, error) {
			t.Fatal("service must not be called without an explicit status")
			return nil, nil
		},
	})

	c, _ := newTestContext(http.MethodPut, "/products/1",
		`{"name":"GATO","description":"x","price":1,"stock":1}`)
	c.SetParamNames("id")
	c.SetParamValues("1")

	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %v", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestProductHandlerRemove(t *testing.T) {
	disabled := int64(0)
	h := NewProductHandler(&stubProductService{
		disableFn: func(_ context.Context, id int64) error {
			disabled = id
			return nil
		},
	})

	c, rec := newTestContext(http.MethodDelete, "/products/3", "")
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Remove(c); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if disabled != 3 {
		t.Errorf("expected Disable(3), got %d", disabled)
	}
	if !strings.Contains(rec.Body.String(), "product disabled") {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}

func TestProductHandlerInvalidID(t *testing.T) {
	h := NewProductHandler(&stubProductService{})

	for _, raw := range []string{"abc", "0", "-5"} {
		c, _ := newTestContext(http.MethodGet, "/products/"+raw, "")
		c.SetParamNames("id")
		c.SetParamValues(raw)

		err := h.Get(c)
		httpErr, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("id %q: expected *echo.HTTPError, got %v", raw, err)
		}
		if httpErr.Code != http.StatusBadRequest {
			t.Errorf("id %q: expected 400, got %d", raw, httpErr.Code)
		}
	}
}
