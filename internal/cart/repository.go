package cart

import (
	"net/http"
)

// CookieName is the single persisted client-state field: a comma-joined list
// of product ids, duplicates allowed, order of insertion preserved.
const CookieName = "cart"

// Repository is the typed contract over the cart's storage medium. The one
// implementation persists through a browser cookie, but dependents only see
// ordered id sequences, which keeps the contract testable on its own.
type Repository interface {
	// Read parses the cart cookie into the ordered id sequence. A missing
	// cookie or a cookie of only malformed tokens reads as empty.
	Read(r *http.Request) []int64

	// Write serializes ids into the cart cookie, scoped to the root path
	// with no expiry.
	Write(w http.ResponseWriter, ids []int64)

	// Add appends one occurrence of id and writes the cookie back.
	// Duplicates are how quantity above one is represented.
	Add(w http.ResponseWriter, r *http.Request, id int64) []int64

	// Remove drops every occurrence of id and writes the cookie back. This
	// removes the whole line, it is not a quantity decrement.
	Remove(w http.ResponseWriter, r *http.Request, id int64) []int64

	// Clear expires the cookie, definitively emptying the cart. Called once,
	// after a confirmed purchase.
	Clear(w http.ResponseWriter)
}

// Quantities counts occurrences per distinct id.
func Quantities(ids []int64) map[int64]int {

	quantities := make(map[int64]int, len(ids))

	for _, id := range ids {
		quantities[id]++
	}

	return quantities
}

// Count is the badge number shown next to the cart: total occurrences, not
// distinct products.
func Count(ids []int64) int {
	return len(ids)
}

// Serialize renders ids in the cookie's wire form, the same comma-joined
// string the purchase request carries.
func Serialize(ids []int64) string {
	return joinIDs(ids)
}
