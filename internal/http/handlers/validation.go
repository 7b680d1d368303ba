package handlers

import (
	"strings"
)

type ProductValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

func validateProduct(p ProductRequest) []ProductValidationError {
	errs := []ProductValidationError{}
	if strings.TrimSpace(p.ProductName) == "" {
		errs = append(errs, ProductValidationError{Field: "product_name", Description: "Product name is required"})
	}
	switch {
	case p.Quantity == nil:
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "Quantity must be a number"})
	case *p.Quantity < 0:
		errs = append(errs, ProductValidationError{Field: "quantity", Description: "Quantity cannot be negative"})
	}
	switch {
	case p.Price == nil:
		errs = append(errs, ProductValidationError{Field: "price", Description: "Price must be a number"})
	case *p.Price < 0:
		errs = append(errs, ProductValidationError{Field: "price", Description: "Price cannot be negative"})
	}
	return errs
}
