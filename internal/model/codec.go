package model

import (
	"encoding/json"
	"fmt"
)

// EncodeCart serializes a cart to the JSON array stored under the cart key.
func EncodeCart(c Cart) (string, error) {
	if c == nil {
		c = Cart{}
	}
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to encode cart: %w", err)
	}
	return string(data), nil
}

// DecodeCart parses a stored cart value.
// Values that break the cart invariants (repeated ids, non-positive amounts)
// are rejected the same way as malformed JSON.
func DecodeCart(value string) (Cart, error) {
	var c Cart
	if err := json.Unmarshal([]byte(value), &c); err != nil {
		return nil, fmt.Errorf("failed to parse cart: %w", err)
	}
	if c == nil {
		// "null" decodes without error
		return nil, fmt.Errorf("failed to parse cart: not an array")
	}

	seen := make(map[int]bool, len(c))
	for _, e := range c {
		if seen[e.ID] {
			return nil, fmt.Errorf("invalid cart: product %d appears more than once", e.ID)
		}
		seen[e.ID] = true
		if e.Amount <= 0 {
			return nil, fmt.Errorf("invalid cart: product %d has amount %d", e.ID, e.Amount)
		}
	}

	return c, nil
}
