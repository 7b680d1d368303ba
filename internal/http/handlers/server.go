package handlers

import (
	repo "github.com/rogerio-castellano/shop-inventory/internal/repo"
)

var productRepo repo.ProductRepository

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}
