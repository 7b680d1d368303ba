package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog"

	handler "github.com/rogerio-castellano/shop-inventory/internal/http/handlers"
	"github.com/rogerio-castellano/shop-inventory/internal/http/router"
	"github.com/rogerio-castellano/shop-inventory/internal/repo"
)

var productRepo *repo.InMemoryProductRepository

func init() {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)
}

func newRouter() http.Handler {
	return router.NewRouter(router.Options{
		Logger:         zerolog.Nop(),
		AllowedOrigins: []string{"http://localhost:3000"},
	})
}

func clearAllProducts() {
	productRepo.Clear()
}

func intPtr(n int) *int { return &n }
func floatPtr(f float64) *float64 { return &f }

func product(name string, quantity int, price float64) handler.ProductRequest {
	return handler.ProductRequest{ProductName: name, Quantity: intPtr(quantity), Price: floatPtr(price)}
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/shop", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func updateProduct(r http.Handler, id int, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPut, fmt.Sprintf("/shop/%d", id), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeProduct(w *httptest.ResponseRecorder) (handler.ProductResponse, error) {
	var resp handler.ProductResponse
	err := json.NewDecoder(w.Body).Decode(&resp)
	return resp, err
}
