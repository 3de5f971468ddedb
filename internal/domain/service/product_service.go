// Package service contains stateless domain services enforcing rules that
// span more than one entity, plus the ports for infrastructure collaborators.
package service

import (
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

// ProductService enforces catalog-level business rules.
type ProductService struct{}

// NewProductService is the constructor for ProductService.
func NewProductService() *ProductService {
	return &ProductService{}
}

// ValidateProductCreation checks the rules for introducing a new catalog item:
// a name, a strictly positive price, and non-negative stock.
func (s *ProductService) ValidateProductCreation(product entity.Product) error {
	if product.Name == "" {
		return domainerrors.NewValidationError("Product name must not be empty")
	}
	if product.Price.Value() <= 0 {
		return domainerrors.NewValidationError("Product price must be greater than zero")
	}
	if product.Stock < 0 {
		return domainerrors.NewValidationError("Product stock must be zero or greater")
	}

	return nil
}

// ValidateStockUpdate checks a stock change against the current product.
// Inactive products reject stock changes.
func (s *ProductService) ValidateStockUpdate(product entity.Product, newStock int) error {
	if newStock < 0 {
		return domainerrors.NewValidationError("Product stock must be zero or greater")
	}
	if !product.IsActive {
		return domainerrors.ErrInactiveStockUpdate
	}

	return nil
}

// CalculateDiscountedPrice applies a discount factor in [0, 1] to the price,
// flooring fractional results.
func (s *ProductService) CalculateDiscountedPrice(price entity.Price, factor float64) (entity.Price, error) {
	return price.ApplyDiscount(factor)
}

// IsProductAvailable reports whether the product can be sold right now.
// Pure and total: it never fails.
func (s *ProductService) IsProductAvailable(product entity.Product) bool {
	return product.IsAvailableForSale()
}
