package cart_test

import (
	"testing"

	"github.com/itemshop/storefront/internal/cart"
	"github.com/itemshop/storefront/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceArithmetic(t *testing.T) {
	snapshot := &models.CartSnapshot{
		Lines: []models.CartLine{
			{Product: models.Product{ID: 1, Name: "A", Cost: 10.00}, Quantity: 2},
			{Product: models.Product{ID: 2, Name: "B", Cost: 5.00}, Quantity: 1},
		},
	}

	subtotal := cart.Subtotal(snapshot)
	tax := cart.Tax(subtotal)
	total := cart.Total(subtotal, tax)

	assert.InDelta(t, 25.00, subtotal, 1e-9)
	assert.InDelta(t, 3.75, tax, 1e-9)
	assert.InDelta(t, 28.75, total, 1e-9)

	invoice := cart.Invoice(snapshot)
	assert.InDelta(t, subtotal, invoice.Subtotal, 1e-9)
	assert.InDelta(t, tax, invoice.Tax, 1e-9)
	assert.InDelta(t, total, invoice.Total, 1e-9)
}

func TestInvoiceEmptySnapshot(t *testing.T) {
	invoice := cart.Invoice(&models.CartSnapshot{})

	assert.Zero(t, invoice.Subtotal)
	assert.Zero(t, invoice.Tax)
	assert.Zero(t, invoice.Total)
}
