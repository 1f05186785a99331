package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/itemshop/storefront/internal/api/middleware"
	"github.com/itemshop/storefront/internal/cart"
	apperrors "github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/utils"
	"github.com/itemshop/storefront/internal/utils/response"
)

type CartHandler struct {
	repo           cart.Repository
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewCartHandler(repo cart.Repository, catalogService service.CatalogService) *CartHandler {
	return &CartHandler{
		repo:           repo,
		catalogService: catalogService,
		validator:      validator.New(),
	}
}

// GetCart reconciles the cookie ids against the catalog and derives the
// invoice figures for display.
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		ids := h.repo.Read(r)

		if len(ids) == 0 {
			response.Success(w, http.StatusOK, &models.CartView{})
			return
		}

		products, err := h.catalogService.ListProducts(r.Context())

		if err != nil {
			logger.Error("Failed to load cart products", "error", err.Error())
			response.Error(w, err)
			return
		}

		snapshot := h.catalogService.ReconcileCart(products, ids)

		response.Success(w, http.StatusOK, &models.CartView{
			Snapshot: *snapshot,
			Invoice:  cart.Invoice(snapshot),
		})

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddItemRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		ids := h.repo.Add(w, r, req.ProductID)

		logger.Info("Product added to cart", "productId", req.ProductID, "cartSize", len(ids))
		response.Success(w, http.StatusOK, &models.CartCountResponse{Count: cart.Count(ids)})

	}
}

// RemoveItem drops the whole line for a product, every occurrence at once.
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		idStr := r.PathValue("id")

		id, err := strconv.ParseInt(idStr, 10, 64)

		if err != nil || id <= 0 {
			response.Error(w, apperrors.BadRequestError("Invalid product id"))
			return
		}

		ids := h.repo.Remove(w, r, id)

		logger.Info("Product removed from cart", "productId", id, "cartSize", len(ids))
		response.Success(w, http.StatusOK, &models.CartCountResponse{Count: cart.Count(ids)})

	}
}

// CartCount backs the nav badge: total units in the cart.
func (h *CartHandler) CartCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		ids := h.repo.Read(r)

		response.Success(w, http.StatusOK, &models.CartCountResponse{Count: cart.Count(ids)})

	}
}
