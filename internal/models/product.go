package models

// Product represents a product entity in the shop inventory.
type Product struct {
	ID          int     `json:"id" db:"id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Quantity    int     `json:"quantity" db:"quantity"`
	Price       float64 `json:"price" db:"price"`
}

// ProductInput is the editable part of a product, as sent on create and update.
// A nil Quantity or Price is a number that failed to parse and travels as JSON null.
type ProductInput struct {
	ProductName string   `json:"product_name"`
	Quantity    *int     `json:"quantity"`
	Price       *float64 `json:"price"`
}

// Input returns the editable fields of p.
func (p Product) Input() ProductInput {
	q, price := p.Quantity, p.Price
	return ProductInput{ProductName: p.ProductName, Quantity: &q, Price: &price}
}
