package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	handler "github.com/rogerio-castellano/shop-inventory/internal/http/handlers"
)

func TestCreateProductHandler_Valid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, product("Laptop", 1, 1500.0))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}

	resp, err := decodeProduct(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}

	if resp.Id == 0 {
		t.Errorf("expected an assigned id")
	}
	if resp.ProductName != "Laptop" {
		t.Errorf("expected name 'Laptop', got %v", resp.ProductName)
	}
	if resp.Price != 1500.0 {
		t.Errorf("expected price 1500.0, got %v", resp.Price)
	}
	if resp.Quantity != 1 {
		t.Errorf("expected quantity 1, got %v", resp.Quantity)
	}
}

func TestCreateProductHandler_ZeroValuesAllowed(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	w := createProduct(r, product("Freebie", 0, 0))

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", w.Code)
	}
}

func TestCreateProductHandler_Invalid(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	tests := []struct {
		name           string
		payload        handler.ProductRequest
		expectCode     int
		expectedErrors []string
	}{
		{
			name:           "Empty name",
			payload:        product("", 1, 100.0),
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"product_name"},
		},
		{
			name:           "Negative price",
			payload:        product("Mouse", 1, -5.0),
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"price"},
		},
		{
			name:           "Negative quantity",
			payload:        product("Keyboard", -1, 50.0),
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"quantity"},
		},
		{
			name:           "Null numbers",
			payload:        handler.ProductRequest{ProductName: "Ghost"},
			expectCode:     http.StatusBadRequest,
			expectedErrors: []string{"quantity", "price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := createProduct(r, tt.payload)

			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}

			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}

			for _, field := range tt.expectedErrors {
				found := false
				for _, err := range resp {
					if strings.EqualFold(err.Field, field) {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("expected error for field %q, but not found", field)
				}
			}
		})
	}
}

func TestCreateProductHandler_MalformedJSON(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	badJSON := `{product_name: "Invalid" price: 100 "}` // missing comma
	req := httptest.NewRequest(http.MethodPost, "/shop", bytes.NewBufferString(badJSON))
	w := httptest.NewRecorder()

	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 Bad Request, got %d", w.Code)
	}

	var resp handler.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Error == "" {
		t.Errorf("expected an error message")
	}
}

func TestGetProductsHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	req := httptest.NewRequest(http.MethodGet, "/shop", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", w.Body.String())
	}

	createProduct(r, product("Apple", 5, 1.5))
	createProduct(r, product("Pear", 2, 2.0))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/shop", nil))

	var products []handler.ProductResponse
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
	if products[0].ProductName != "Apple" || products[1].ProductName != "Pear" {
		t.Errorf("expected products in creation order, got %+v", products)
	}
}

func TestGetProductByIDHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created, _ := decodeProduct(createProduct(r, product("Apple", 5, 1.5)))

	tests := []struct {
		name       string
		path       string
		expectCode int
	}{
		{"Existing product", fmt.Sprintf("/shop/%d", created.Id), http.StatusOK},
		{"Unknown product", "/shop/999", http.StatusNotFound},
		{"Invalid id", "/shop/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.expectCode {
				t.Errorf("expected status %d, got %d", tt.expectCode, w.Code)
			}
		})
	}
}

func TestUpdateProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created, _ := decodeProduct(createProduct(r, product("Apple", 5, 1.5)))

	w := updateProduct(r, created.Id, product("Green apple", 7, 1.75))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	resp, err := decodeProduct(w)
	if err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	want := handler.ProductResponse{Id: created.Id, ProductName: "Green apple", Quantity: 7, Price: 1.75}
	if resp != want {
		t.Errorf("expected %+v, got %+v", want, resp)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fmt.Sprintf("/shop/%d", created.Id), nil))
	stored, _ := decodeProduct(w)
	if stored != want {
		t.Errorf("expected stored product %+v, got %+v", want, stored)
	}
}

func TestUpdateProductHandler_Errors(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created, _ := decodeProduct(createProduct(r, product("Apple", 5, 1.5)))

	if w := updateProduct(r, 999, product("Nope", 1, 1)); w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown product, got %d", w.Code)
	}
	if w := updateProduct(r, created.Id, product("", 1, 1)); w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for empty name, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPut, "/shop/abc", bytes.NewBufferString(`{}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid id, got %d", w.Code)
	}
}

func TestDeleteProductHandler(t *testing.T) {
	t.Cleanup(clearAllProducts)
	r := newRouter()

	created, _ := decodeProduct(createProduct(r, product("Apple", 5, 1.5)))
	path := fmt.Sprintf("/shop/%d", created.Id)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, path, nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", w.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodOptions, "/shop/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 No Content, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("expected allowed origin header, got %q", got)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"ok"`) {
		t.Errorf("unexpected body %s", w.Body.String())
	}
}
