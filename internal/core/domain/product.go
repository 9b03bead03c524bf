package domain

import (
	"errors"
	"strings"
)

var ErrProductNotFound = errors.New("product not found")

// Product is a catalog record. Deletion is a soft-disable: Status flips to
// false and the record stays in storage.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Status      bool    `json:"status"`
}

// NormalizeProductName is the canonical form used for name lookups:
// trimmed and uppercased, exact match afterwards.
func NormalizeProductName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
