package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jacksmith/rocketcart/internal/devserver"
	"github.com/jacksmith/rocketcart/internal/model"
)

func newTestClient(t *testing.T, h http.Handler) *APIClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL + "/", Timeout: 2 * time.Second})
}

func fixture() *devserver.Data {
	return &devserver.Data{
		Products: []model.Product{
			{ID: 1, Title: "Tênis de Caminhada", Price: 179.9, Image: "https://example.com/1.jpg"},
		},
		Stock: []model.Stock{{ID: 1, Amount: 3}},
	}
}

func TestStock(t *testing.T) {
	c := newTestClient(t, devserver.New(fixture(), nil))

	t.Run("found", func(t *testing.T) {
		s, err := c.Stock(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, model.Stock{ID: 1, Amount: 3}, s)
	})

	t.Run("not found is a status error", func(t *testing.T) {
		_, err := c.Stock(context.Background(), 42)
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.Status)
		assert.Contains(t, statusErr.Path, "/stock/42")
	})
}

func TestProduct(t *testing.T) {
	c := newTestClient(t, devserver.New(fixture(), nil))

	t.Run("found", func(t *testing.T) {
		p, err := c.Product(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Tênis de Caminhada", p.Title)
		assert.Equal(t, 179.9, p.Price)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := c.Product(context.Background(), 7)
		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusNotFound, statusErr.Status)
	})
}

func TestMalformedResponses(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not json", `<html>oops</html>`},
		{"wrong id", `{"id":2,"amount":5}`},
		{"empty object", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))

			_, err := c.Stock(context.Background(), 1)
			assert.Error(t, err)
		})
	}
}

func TestServerError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.Product(context.Background(), 1)
	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.Status)
	assert.Contains(t, err.Error(), "status 500")
}

func TestUnreachableService(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(Config{BaseURL: url, Timeout: time.Second})
	_, err := c.Stock(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog request stock/1")
}

func TestContextCancelled(t *testing.T) {
	c := newTestClient(t, devserver.New(fixture(), nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Stock(ctx, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
