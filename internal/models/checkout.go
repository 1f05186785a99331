package models

// CheckoutRequest carries the mailing address and payment fields. All are
// free text and required, matching the upstream purchase contract.
type CheckoutRequest struct {
	Street       string `json:"street" validate:"required"`
	City         string `json:"city" validate:"required"`
	Province     string `json:"province" validate:"required"`
	Country      string `json:"country" validate:"required"`
	PostalCode   string `json:"postal_code" validate:"required"`
	CreditCard   string `json:"credit_card" validate:"required"`
	CreditExpire string `json:"credit_expire" validate:"required"`
	CreditCVV    string `json:"credit_cvv" validate:"required"`
}

// PurchasePayload is the exact body posted to /products/purchase: the form
// fields, the raw comma-joined cart and the three invoice figures.
type PurchasePayload struct {
	Street       string  `json:"street"`
	City         string  `json:"city"`
	Province     string  `json:"province"`
	Country      string  `json:"country"`
	PostalCode   string  `json:"postal_code"`
	CreditCard   string  `json:"credit_card"`
	CreditExpire string  `json:"credit_expire"`
	CreditCVV    string  `json:"credit_cvv"`
	Cart         string  `json:"cart"`
	InvoiceAmt   float64 `json:"invoice_amt"`
	InvoiceTax   float64 `json:"invoice_tax"`
	InvoiceTotal float64 `json:"invoice_total"`
}

type CheckoutStatus string

const (
	CheckoutStatusInitiated   CheckoutStatus = "initiated"
	CheckoutStatusBlockedCart CheckoutStatus = "blocked_empty_cart"
	CheckoutStatusInvoiced    CheckoutStatus = "invoiced"
	CheckoutStatusSubmitted   CheckoutStatus = "submitted"
	CheckoutStatusCompleted   CheckoutStatus = "completed"
	CheckoutStatusAuthExpired CheckoutStatus = "auth_expired"
	CheckoutStatusFailed      CheckoutStatus = "failed"
)

func (s CheckoutStatus) IsTerminal() bool {
	switch s {
	case CheckoutStatusCompleted, CheckoutStatusAuthExpired, CheckoutStatusFailed, CheckoutStatusBlockedCart:
		return true
	}

	return false
}

func (s CheckoutStatus) String() string {
	return string(s)
}

// CheckoutResult is what the coordinator hands back to the rendering layer.
type CheckoutResult struct {
	Status  CheckoutStatus `json:"status"`
	Invoice InvoiceFigures `json:"invoice"`
	Message string         `json:"message,omitempty"`
}
