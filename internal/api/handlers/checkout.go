package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/itemshop/storefront/internal/api/middleware"
	"github.com/itemshop/storefront/internal/cart"
	"github.com/itemshop/storefront/internal/metrics"
	"github.com/itemshop/storefront/internal/models"
	service "github.com/itemshop/storefront/internal/services"
	"github.com/itemshop/storefront/internal/utils"
	"github.com/itemshop/storefront/internal/utils/response"
)

type CheckoutHandler struct {
	repo            cart.Repository
	sessionService  service.SessionService
	checkoutService service.CheckoutService
	validator       *validator.Validate
}

func NewCheckoutHandler(repo cart.Repository, sessionService service.SessionService, checkoutService service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		repo:            repo,
		sessionService:  sessionService,
		checkoutService: checkoutService,
		validator:       validator.New(),
	}
}

// Checkout runs the whole coordinator: probe session, validate the form,
// submit once. The cart cookie is cleared only on a completed purchase; an
// expired session leaves it untouched so the order survives a re-login.
func (h *CheckoutHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		state := h.sessionService.Probe(r.Context(), r.Cookies())
		ids := h.repo.Read(r)

		result, err := h.checkoutService.Submit(r.Context(), r.Cookies(), state, &req, ids)

		if err != nil {
			metrics.ObserveCheckout(result.Status.String())
			logger.Warn("Checkout did not complete",
				"status", result.Status.String(),
				"error", err.Error(),
			)
			response.Error(w, err)
			return
		}

		metrics.ObserveCheckout(result.Status.String())
		h.repo.Clear(w)

		logger.Info("Purchase completed",
			"status", result.Status.String(),
			"total", result.Invoice.Total,
		)
		response.Success(w, http.StatusOK, result)

	}
}
