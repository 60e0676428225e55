package cart

import "errors"

// User-facing notification messages.
const (
	MsgOutOfStock      = "Requested quantity is out of stock"
	MsgInvalidQuantity = "Requested quantity is invalid"
	MsgAddFailed       = "Failed to add product"
	MsgRemoveFailed    = "Failed to remove product"
	MsgUpdateFailed    = "Failed to update product amount"
)

// Notifier surfaces failures to the user. Notify must not block.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) { f(message) }

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}

// Message returns the notification text for an error returned by op.
func Message(op Op, err error) string {
	var (
		stockErr    *StockError
		quantityErr *QuantityError
	)
	switch {
	case errors.As(err, &stockErr):
		return MsgOutOfStock
	case errors.As(err, &quantityErr):
		return MsgInvalidQuantity
	}

	switch op {
	case OpAdd:
		return MsgAddFailed
	case OpRemove:
		return MsgRemoveFailed
	default:
		return MsgUpdateFailed
	}
}
