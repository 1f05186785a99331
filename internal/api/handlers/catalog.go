package handlers

import (
	"net/http"
	"strconv"

	"github.com/itemshop/storefront/internal/api/middleware"
	apperrors "github.com/itemshop/storefront/internal/errors"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/utils/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.ListProducts(r.Context())

		if err != nil {
			logger.Error("Failed to fetch catalog", "error", err.Error())
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, products)

	}
}

func (h *CatalogHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)

		if err != nil || id <= 0 {
			response.Error(w, apperrors.BadRequestError("Invalid product id"))
			return
		}

		product, err := h.catalogService.GetProduct(r.Context(), id)

		if err != nil {
			// Whatever went wrong upstream, the detail page shows "not
			// found".
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)

	}
}
