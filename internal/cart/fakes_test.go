package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/jacksmith/rocketcart/internal/model"
)

// fakeCatalog serves stock and products from maps.
type fakeCatalog struct {
	mu         sync.Mutex
	stock      map[int]int
	products   map[int]model.Product
	stockErr   error
	productErr error
	stockCalls int
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		stock:    map[int]int{},
		products: map[int]model.Product{},
	}
}

// put registers a product with the given stock.
func (f *fakeCatalog) put(id, stock int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stock[id] = stock
	f.products[id] = model.Product{
		ID:    id,
		Title: fmt.Sprintf("Product %d", id),
		Price: float64(id) * 10,
		Image: fmt.Sprintf("https://example.com/%d.jpg", id),
	}
}

func (f *fakeCatalog) Stock(ctx context.Context, productID int) (model.Stock, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stockCalls++
	if f.stockErr != nil {
		return model.Stock{}, f.stockErr
	}
	amount, ok := f.stock[productID]
	if !ok {
		return model.Stock{}, fmt.Errorf("stock for %d: not found", productID)
	}
	return model.Stock{ID: productID, Amount: amount}, nil
}

func (f *fakeCatalog) Product(ctx context.Context, productID int) (model.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.productErr != nil {
		return model.Product{}, f.productErr
	}
	p, ok := f.products[productID]
	if !ok {
		return model.Product{}, fmt.Errorf("product %d: not found", productID)
	}
	return p, nil
}

// fakeStorage is an in-memory Storage with injectable failures.
type fakeStorage struct {
	mu     sync.Mutex
	values map[string]string
	getErr error
	setErr error
	sets   int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{values: map[string]string{}}
}

func (f *fakeStorage) Get(ctx context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.sets++
	return nil
}

func (f *fakeStorage) value(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.values[key]
	return v, ok
}

// recorder collects notifications.
type recorder struct {
	mu       sync.Mutex
	messages []string
}

func (r *recorder) Notify(message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.messages...)
}
