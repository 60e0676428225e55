package cli

import (
	"fmt"
	"io"
	"strconv"
)

// ValidationError indicates a command argument failed validation.
type ValidationError struct {
	Field   string // the argument that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// ParseProductID parses a product id argument. IDs are positive integers.
func ParseProductID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Field: "product id", Message: fmt.Sprintf("%q is not a positive integer", arg)}
	}
	return id, nil
}

// ParseAmount parses an amount argument. Any integer is accepted here;
// range checks belong to the cart.
func ParseAmount(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, &ValidationError{Field: "amount", Message: fmt.Sprintf("%q is not an integer", arg)}
	}
	return n, nil
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}

// Notifier prints user notifications to a writer, in red when colors are on.
type Notifier struct {
	W io.Writer
}

// Notify writes one notification line.
func (n Notifier) Notify(message string) {
	fmt.Fprintln(n.W, Red(message))
}
