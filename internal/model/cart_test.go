package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCart() Cart {
	return Cart{
		{Product: Product{ID: 1, Title: "Tênis de Caminhada", Price: 179.9, Image: "https://example.com/1.jpg"}, Amount: 2},
		{Product: Product{ID: 3, Title: "Tênis Adidas Duramo", Price: 219.9, Image: "https://example.com/3.jpg"}, Amount: 1},
		{Product: Product{ID: 5, Title: "Tênis VR Caminhada", Price: 139.9, Image: "https://example.com/5.jpg"}, Amount: 4},
	}
}

func TestCartIndex(t *testing.T) {
	c := sampleCart()

	assert.Equal(t, 0, c.Index(1))
	assert.Equal(t, 2, c.Index(5))
	assert.Equal(t, -1, c.Index(2))
	assert.Equal(t, -1, Cart(nil).Index(1))
}

func TestCartFind(t *testing.T) {
	c := sampleCart()

	e, ok := c.Find(3)
	require.True(t, ok)
	assert.Equal(t, "Tênis Adidas Duramo", e.Title)
	assert.Equal(t, 1, e.Amount)

	_, ok = c.Find(99)
	assert.False(t, ok)
}

func TestCartClone(t *testing.T) {
	t.Run("clone is independent", func(t *testing.T) {
		c := sampleCart()
		clone := c.Clone()
		clone[0].Amount = 99
		clone[1].Title = "changed"

		assert.Equal(t, 2, c[0].Amount)
		assert.Equal(t, "Tênis Adidas Duramo", c[1].Title)
	})

	t.Run("nil clones to empty", func(t *testing.T) {
		clone := Cart(nil).Clone()
		require.NotNil(t, clone)
		assert.Empty(t, clone)
	})
}

func TestCartWithout(t *testing.T) {
	c := sampleCart()

	out := c.Without(1)
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 5, out[1].ID)

	// Source untouched
	require.Len(t, c, 3)
	assert.Equal(t, 3, c[1].ID)

	assert.Empty(t, Cart{{Product: Product{ID: 2}, Amount: 1}}.Without(0))
}

func TestCartTotalUnits(t *testing.T) {
	assert.Equal(t, 7, sampleCart().TotalUnits())
	assert.Equal(t, 0, Cart{}.TotalUnits())
}
