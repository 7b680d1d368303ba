package handlers

import "github.com/rogerio-castellano/shop-inventory/internal/models"

// ProductRequest is the body of create and update requests. Numeric fields
// are pointers so that a missing or null value can be told apart from zero.
type ProductRequest struct {
	ProductName string   `json:"product_name" example:"Apple"`
	Quantity    *int     `json:"quantity" example:"5"`
	Price       *float64 `json:"price" example:"1.5"`
}

type ProductResponse struct {
	Id          int     `json:"id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

func toResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:          p.ID,
		ProductName: p.ProductName,
		Quantity:    p.Quantity,
		Price:       p.Price,
	}
}

// toProduct assumes req passed validateProduct.
func (req ProductRequest) toProduct(id int) models.Product {
	return models.Product{
		ID:          id,
		ProductName: req.ProductName,
		Quantity:    *req.Quantity,
		Price:       *req.Price,
	}
}
