// Package catalog talks to the remote product and stock service.
package catalog

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jacksmith/rocketcart/internal/model"
)

// Client exposes the catalog lookups the cart depends on.
type Client interface {
	Stock(ctx context.Context, productID int) (model.Stock, error)
	Product(ctx context.Context, productID int) (model.Product, error)
}

// Config holds the connection settings for APIClient.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Retries int
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// StatusError is returned when the service answers with a non-2xx status.
type StatusError struct {
	Path   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog request %s failed with status %d", e.Path, e.Status)
}

// NewClient builds a catalog client using the provided configuration values.
func NewClient(cfg Config) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Accept", "application/json").
		SetTimeout(cfg.Timeout).
		SetRetryCount(cfg.Retries)

	return &APIClient{httpClient: restyClient}
}

// Stock fetches GET stock/{id}.
func (c *APIClient) Stock(ctx context.Context, productID int) (model.Stock, error) {
	var stock model.Stock
	if err := c.get(ctx, "stock/{id}", productID, &stock); err != nil {
		return model.Stock{}, err
	}
	if stock.ID != productID {
		return model.Stock{}, fmt.Errorf("stock response for product %d carried id %d", productID, stock.ID)
	}
	return stock, nil
}

// Product fetches GET products/{id}.
func (c *APIClient) Product(ctx context.Context, productID int) (model.Product, error) {
	var product model.Product
	if err := c.get(ctx, "products/{id}", productID, &product); err != nil {
		return model.Product{}, err
	}
	if product.ID != productID {
		return model.Product{}, fmt.Errorf("product response for product %d carried id %d", productID, product.ID)
	}
	return product, nil
}

func (c *APIClient) get(ctx context.Context, path string, productID int, result any) error {
	id := strconv.Itoa(productID)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(result).
		ForceContentType("application/json").
		Get(path)
	if err != nil {
		return fmt.Errorf("catalog request %s: %w", strings.Replace(path, "{id}", id, 1), err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return &StatusError{Path: resp.Request.URL, Status: resp.StatusCode()}
	}
	return nil
}
