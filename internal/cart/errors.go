package cart

import (
	"errors"
	"fmt"
)

// Op names the mutating operation an error came from.
type Op string

const (
	OpAdd    Op = "add"
	OpRemove Op = "remove"
	OpUpdate Op = "update"
)

// ErrClosed is returned by operations on a store after Close.
var ErrClosed = errors.New("cart store is closed")

// StockError indicates the requested quantity exceeds the catalog's stock.
type StockError struct {
	ProductID int
	Requested int // quantity the cart would hold after the operation
	Available int // stock reported by the catalog
}

func (e *StockError) Error() string {
	return fmt.Sprintf("product %d: requested %d but only %d in stock", e.ProductID, e.Requested, e.Available)
}

// NotInCartError indicates a remove or update named a product absent from the cart.
type NotInCartError struct {
	Op        Op
	ProductID int
}

func (e *NotInCartError) Error() string {
	return fmt.Sprintf("cannot %s product %d: not in cart", e.Op, e.ProductID)
}

// QuantityError indicates an update asked for a non-positive amount.
type QuantityError struct {
	ProductID int
	Amount    int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("product %d: invalid amount %d (must be at least 1)", e.ProductID, e.Amount)
}

// TransientError wraps a catalog, encoding or storage failure.
type TransientError struct {
	Op  Op
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// Reported reports whether err came from a store operation, meaning the
// user has already been notified about it.
func Reported(err error) bool {
	var (
		stockErr     *StockError
		notInCartErr *NotInCartError
		quantityErr  *QuantityError
		transientErr *TransientError
	)
	return errors.As(err, &stockErr) ||
		errors.As(err, &notInCartErr) ||
		errors.As(err, &quantityErr) ||
		errors.As(err, &transientErr)
}
