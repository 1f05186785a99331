package models

// CartLine is one distinct product in the cart joined with its catalog record.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CartSnapshot is the derived join of cart ids, quantities and catalog
// records. It is recomputed on every read and never persisted; the cookie
// sequence stays the single source of truth.
type CartSnapshot struct {
	Lines []CartLine `json:"lines"`
}

// Quantity returns the quantity for a product id, zero when absent.
func (s *CartSnapshot) Quantity(productID int64) int {
	for _, line := range s.Lines {
		if line.Product.ID == productID {
			return line.Quantity
		}
	}

	return 0
}

func (s *CartSnapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// InvoiceFigures are computed from a snapshot at submission time, never
// stored.
type InvoiceFigures struct {
	Subtotal float64 `json:"invoice_amt"`
	Tax      float64 `json:"invoice_tax"`
	Total    float64 `json:"invoice_total"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required,gt=0"`
}

type CartView struct {
	Snapshot CartSnapshot   `json:"snapshot"`
	Invoice  InvoiceFigures `json:"invoice"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}
