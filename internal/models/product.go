package models

import (
	"errors"
	"strings"
	"time"
)

// Product represents a merchandise catalog entry. Sell marks whether new cart
// insertions for it are permitted; editing the quantity of a line already in
// a cart does not re-check it.
type Product struct {
	ID          int       `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       int       `json:"price" db:"price"` // Price in cents
	Description string    `json:"description" db:"description"`
	Category    string    `json:"category" db:"category"`
	ImageURL    string    `json:"image_url" db:"image_url"`
	Sell        bool      `json:"sell" db:"sell"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// ProductCreateRequest represents the data needed to create a product
type ProductCreateRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Sell        bool   `json:"sell"`
}

// ProductUpdateRequest represents the data that can be updated for a product
type ProductUpdateRequest struct {
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
	Sell        bool   `json:"sell"`
}

// Validate validates product creation data
func (req *ProductCreateRequest) Validate() error {
	return validateProductFields(req.Name, req.Price, req.Category)
}

// Validate validates product update data
func (req *ProductUpdateRequest) Validate() error {
	return validateProductFields(req.Name, req.Price, req.Category)
}

func validateProductFields(name string, price int, category string) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("product name is required")
	}

	if len(name) > 100 {
		return errors.New("product name must be less than 100 characters")
	}

	if price < 0 {
		return errors.New("product price cannot be negative")
	}

	if strings.TrimSpace(category) == "" {
		return errors.New("product category is required")
	}

	return nil
}

// PriceInCurrency returns the price in the main currency as a float
func (p *Product) PriceInCurrency() float64 {
	return float64(p.Price) / 100.0
}
