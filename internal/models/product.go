package models

// Product is owned by the remote commerce API; the storefront fetches it and
// never mutates it.
type Product struct {
	ID            int64   `json:"product_id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Cost          float64 `json:"cost"`
	ImageFilename string  `json:"image_filename"`
}
