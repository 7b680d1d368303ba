package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	repo "github.com/rogerio-castellano/shop-inventory/internal/repo"
)

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the shop and returns it with its assigned id
// @Tags shop
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 500 {object} ErrorResponse
// @Router /shop [post]
func CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := productRepo.Create(r.Context(), req.toProduct(0))
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("could not create product")
		writeError(w, r, http.StatusInternalServerError, "could not create product")
		return
	}

	zerolog.Ctx(r.Context()).Info().Int("id", created.ID).Msg("product created")
	writeJSON(w, r, http.StatusCreated, toResponse(created))
}

// GetProductsHandler godoc
// @Summary List all products
// @Tags shop
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop [get]
func GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := productRepo.GetAll(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("could not fetch products")
		writeError(w, r, http.StatusInternalServerError, "could not fetch products")
		return
	}
	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toResponse(p)
	}
	writeJSON(w, r, http.StatusOK, response)
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags shop
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/{id} [get]
func GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}

	product, err := productRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, "product not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int("id", id).Msg("could not fetch product")
		writeError(w, r, http.StatusInternalServerError, "could not fetch product")
		return
	}
	writeJSON(w, r, http.StatusOK, toResponse(product))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Description Replaces name, quantity and price of an existing product
// @Tags shop
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {array} ProductValidationError
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/{id} [put]
func UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid input")
		return
	}

	if validationErrors := validateProduct(req); len(validationErrors) > 0 {
		writeJSON(w, r, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := productRepo.Update(r.Context(), req.toProduct(id))
	if err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, "product not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int("id", id).Msg("could not update product")
		writeError(w, r, http.StatusInternalServerError, "could not update product")
		return
	}
	writeJSON(w, r, http.StatusOK, toResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Tags shop
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shop/{id} [delete]
func DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid product ID")
		return
	}
	if err := productRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repo.ErrProductNotFound) {
			writeError(w, r, http.StatusNotFound, "product not found")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Int("id", id).Msg("could not delete product")
		writeError(w, r, http.StatusInternalServerError, "could not delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, HealthResponse{Status: "ok"})
}
