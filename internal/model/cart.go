// Package model defines the core data structures for rocketcart.
package model

// Product is the display record returned by the catalog service.
// The cart never interprets these fields; they are carried as-is.
type Product struct {
	ID    int     `json:"id"`
	Title string  `json:"title"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// Stock is the catalog's authoritative count of available units for a product.
type Stock struct {
	ID     int `json:"id"`
	Amount int `json:"amount"`
}

// CartEntry is one product line in the cart.
type CartEntry struct {
	Product
	Amount int `json:"amount"`
}

// Cart is the ordered list of entries, in the order products were first added.
type Cart []CartEntry

// Index returns the position of the entry for productID, or -1.
func (c Cart) Index(productID int) int {
	for i := range c {
		if c[i].ID == productID {
			return i
		}
	}
	return -1
}

// Find returns the entry for productID and whether it exists.
func (c Cart) Find(productID int) (CartEntry, bool) {
	i := c.Index(productID)
	if i < 0 {
		return CartEntry{}, false
	}
	return c[i], true
}

// Clone returns an independent copy of the cart.
// A nil cart clones to an empty, non-nil cart so it encodes as [].
func (c Cart) Clone() Cart {
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// Without returns a copy of the cart with the entry at i removed.
// Remaining entries keep their relative order.
func (c Cart) Without(i int) Cart {
	out := make(Cart, 0, len(c)-1)
	out = append(out, c[:i]...)
	return append(out, c[i+1:]...)
}

// TotalUnits returns the sum of all entry amounts.
func (c Cart) TotalUnits() int {
	total := 0
	for _, e := range c {
		total += e.Amount
	}
	return total
}
