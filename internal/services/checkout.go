package service

import (
	"context"
	"net/http"

	"github.com/itemshop/storefront/internal/cart"
	"github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/pkg/commerce"
)

// CheckoutService runs the purchase flow: gate on session, refuse an empty
// cart before any network activity, derive the invoice from the snapshot at
// the moment of submission, submit exactly once. There is deliberately no
// retry; resubmitting a payment without an idempotency key risks a double
// charge.
type CheckoutService interface {
	Submit(ctx context.Context, cookies []*http.Cookie, session models.SessionState, form *models.CheckoutRequest, cartIDs []int64) (*models.CheckoutResult, error)
}

type checkoutService struct {
	client  commerce.Client
	catalog CatalogService
}

func NewCheckoutService(client commerce.Client, catalog CatalogService) CheckoutService {
	return &checkoutService{
		client:  client,
		catalog: catalog,
	}
}

func (s *checkoutService) Submit(ctx context.Context, cookies []*http.Cookie, session models.SessionState, form *models.CheckoutRequest, cartIDs []int64) (*models.CheckoutResult, error) {

	result := &models.CheckoutResult{Status: models.CheckoutStatusInitiated}

	if !session.Authenticated {
		result.Status = models.CheckoutStatusAuthExpired

		return result, errors.UnauthorizedError("You must be logged in to proceed to checkout")
	}

	if len(cartIDs) == 0 {
		result.Status = models.CheckoutStatusBlockedCart

		return result, errors.ValidationError("Your cart is empty.")
	}

	// Quantities may have changed between page load and submit; the invoice
	// is derived from the cart as it is right now.
	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		result.Status = models.CheckoutStatusFailed

		return result, err
	}

	snapshot := s.catalog.ReconcileCart(products, cartIDs)
	result.Invoice = cart.Invoice(snapshot)
	result.Status = models.CheckoutStatusInvoiced

	payload := &models.PurchasePayload{
		Street:       form.Street,
		City:         form.City,
		Province:     form.Province,
		Country:      form.Country,
		PostalCode:   form.PostalCode,
		CreditCard:   form.CreditCard,
		CreditExpire: form.CreditExpire,
		CreditCVV:    form.CreditCVV,
		Cart:         cart.Serialize(cartIDs),
		InvoiceAmt:   result.Invoice.Subtotal,
		InvoiceTax:   result.Invoice.Tax,
		InvoiceTotal: result.Invoice.Total,
	}

	result.Status = models.CheckoutStatusSubmitted

	if err := s.client.Purchase(ctx, cookies, payload); err != nil {

		if appErr, ok := errors.IsAppError(err); ok && appErr.Code == errors.ErrCodeUnauthorized {
			// The purchase did not complete; the cart stays as it was and
			// the caller sends the user back to login.
			result.Status = models.CheckoutStatusAuthExpired

			return result, err
		}

		result.Status = models.CheckoutStatusFailed

		return result, err
	}

	// The only purchase path that empties the cart. The caller clears the
	// cookie on seeing this status.
	result.Status = models.CheckoutStatusCompleted
	result.Message = "Your order has been successfully placed."

	return result, nil
}
