package cart

import "github.com/itemshop/storefront/internal/models"

// TaxRate is fixed; the upstream API recomputes nothing, it trusts the
// figures submitted with the purchase.
const TaxRate = 0.15

// Subtotal sums unit cost times quantity over the snapshot. No rounding
// happens here; display formatting owns the two decimal places.
func Subtotal(snapshot *models.CartSnapshot) float64 {

	var subtotal float64

	for _, line := range snapshot.Lines {
		subtotal += line.Product.Cost * float64(line.Quantity)
	}

	return subtotal
}

func Tax(subtotal float64) float64 {
	return subtotal * TaxRate
}

func Total(subtotal, tax float64) float64 {
	return subtotal + tax
}

// Invoice derives the three figures in one step, for the moment of
// submission.
func Invoice(snapshot *models.CartSnapshot) models.InvoiceFigures {

	subtotal := Subtotal(snapshot)
	tax := Tax(subtotal)

	return models.InvoiceFigures{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    Total(subtotal, tax),
	}
}
