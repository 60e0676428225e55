// Package cart implements the shopping-cart store: an ordered list of
// products and quantities, validated against catalog stock and persisted to
// a key-value store after every change.
package cart

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jacksmith/rocketcart/internal/model"
)

// DefaultKey is the storage key the cart is persisted under.
const DefaultKey = "@RocketShoes:cart"

// Storage is the persistence the store needs.
// The concrete implementations live in the storage package.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Catalog is the remote lookup the store validates against.
type Catalog interface {
	Stock(ctx context.Context, productID int) (model.Stock, error)
	Product(ctx context.Context, productID int) (model.Product, error)
}

// Options configures a Store. Zero values select defaults.
type Options struct {
	Key      string
	Logger   *zap.Logger
	Notifier Notifier
}

// UpdateAmount is the input to UpdateProductAmount.
type UpdateAmount struct {
	ProductID int
	Amount    int
}

// Store is the single source of truth for cart contents.
//
// Mutations are serialized: each one holds opMu from its first catalog call
// until its result is committed, so overlapping calls cannot lose updates.
// Readers only take mu and never wait on the catalog.
type Store struct {
	storage  Storage
	catalog  Catalog
	key      string
	logger   *zap.Logger
	notifier Notifier

	opMu   sync.Mutex
	mu     sync.RWMutex
	cart   model.Cart
	closed bool
}

// New creates a store and loads the persisted cart.
// A missing, unreadable or corrupt value yields an empty cart; the cause is
// logged and never returned.
func New(ctx context.Context, storage Storage, catalog Catalog, opts Options) *Store {
	s := &Store{
		storage:  storage,
		catalog:  catalog,
		key:      opts.Key,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
	if s.key == "" {
		s.key = DefaultKey
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}

	s.cart = s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) model.Cart {
	value, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.logger.Warn("failed to read stored cart, starting empty", zap.String("key", s.key), zap.Error(err))
		return model.Cart{}
	}
	if !ok {
		return model.Cart{}
	}

	c, err := model.DecodeCart(value)
	if err != nil {
		s.logger.Warn("discarding corrupt stored cart", zap.String("key", s.key), zap.Error(err))
		return model.Cart{}
	}

	s.logger.Debug("loaded cart", zap.Int("entries", len(c)))
	return c
}

// Cart returns a snapshot of the cart. Changing it does not affect the store.
func (s *Store) Cart() model.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cart.Clone()
}

// Len returns the number of entries in the cart.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cart)
}

// Close ends the store's lifecycle. Later mutations fail; reads keep working.
// The storage and catalog are owned by the caller and stay open.
func (s *Store) Close() error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// AddProduct adds one unit of productID, appending a new entry with amount 1
// when the product is not yet in the cart.
func (s *Store) AddProduct(ctx context.Context, productID int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.checkOpen(OpAdd); err != nil {
		return s.fail(OpAdd, productID, err)
	}

	var (
		stock   model.Stock
		product model.Product
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stock, err = s.catalog.Stock(gctx, productID)
		return err
	})
	g.Go(func() error {
		var err error
		product, err = s.catalog.Product(gctx, productID)
		return err
	})
	if err := g.Wait(); err != nil {
		return s.fail(OpAdd, productID, &TransientError{Op: OpAdd, Err: err})
	}

	next := s.Cart()
	if i := next.Index(productID); i < 0 {
		if stock.Amount <= 0 {
			return s.fail(OpAdd, productID, &StockError{ProductID: productID, Requested: 1, Available: stock.Amount})
		}
		next = append(next, model.CartEntry{Product: product, Amount: 1})
	} else {
		want := next[i].Amount + 1
		if stock.Amount < want {
			return s.fail(OpAdd, productID, &StockError{ProductID: productID, Requested: want, Available: stock.Amount})
		}
		next[i].Amount = want
	}

	if err := s.commit(ctx, OpAdd, next); err != nil {
		return s.fail(OpAdd, productID, err)
	}
	s.logger.Info("product added", zap.Int("product_id", productID), zap.Int("stock", stock.Amount))
	return nil
}

// RemoveProduct deletes the entry for productID. No catalog call is made.
func (s *Store) RemoveProduct(ctx context.Context, productID int) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.checkOpen(OpRemove); err != nil {
		return s.fail(OpRemove, productID, err)
	}

	current := s.Cart()
	i := current.Index(productID)
	if i < 0 {
		return s.fail(OpRemove, productID, &NotInCartError{Op: OpRemove, ProductID: productID})
	}

	if err := s.commit(ctx, OpRemove, current.Without(i)); err != nil {
		return s.fail(OpRemove, productID, err)
	}
	s.logger.Info("product removed", zap.Int("product_id", productID))
	return nil
}

// UpdateProductAmount sets the entry's amount to exactly req.Amount.
// An amount of zero or less is rejected; it never removes the entry.
func (s *Store) UpdateProductAmount(ctx context.Context, req UpdateAmount) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.checkOpen(OpUpdate); err != nil {
		return s.fail(OpUpdate, req.ProductID, err)
	}

	stock, err := s.catalog.Stock(ctx, req.ProductID)
	if err != nil {
		return s.fail(OpUpdate, req.ProductID, &TransientError{Op: OpUpdate, Err: err})
	}

	next := s.Cart()
	i := next.Index(req.ProductID)
	switch {
	case i < 0:
		return s.fail(OpUpdate, req.ProductID, &NotInCartError{Op: OpUpdate, ProductID: req.ProductID})
	case req.Amount <= 0:
		return s.fail(OpUpdate, req.ProductID, &QuantityError{ProductID: req.ProductID, Amount: req.Amount})
	case req.Amount > stock.Amount:
		return s.fail(OpUpdate, req.ProductID, &StockError{ProductID: req.ProductID, Requested: req.Amount, Available: stock.Amount})
	}

	next[i].Amount = req.Amount
	if err := s.commit(ctx, OpUpdate, next); err != nil {
		return s.fail(OpUpdate, req.ProductID, err)
	}
	s.logger.Info("product amount updated",
		zap.Int("product_id", req.ProductID),
		zap.Int("amount", req.Amount),
		zap.Int("stock", stock.Amount))
	return nil
}

func (s *Store) checkOpen(op Op) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return &TransientError{Op: op, Err: ErrClosed}
	}
	return nil
}

// commit persists next and, only once that succeeds, makes it the current cart.
func (s *Store) commit(ctx context.Context, op Op, next model.Cart) error {
	value, err := model.EncodeCart(next)
	if err != nil {
		return &TransientError{Op: op, Err: err}
	}
	if err := s.storage.Set(ctx, s.key, value); err != nil {
		return &TransientError{Op: op, Err: err}
	}

	s.mu.Lock()
	s.cart = next
	s.mu.Unlock()
	return nil
}

// fail notifies the user, logs the cause and returns err unchanged.
func (s *Store) fail(op Op, productID int, err error) error {
	msg := Message(op, err)
	s.logger.Warn("cart operation failed",
		zap.String("op", string(op)),
		zap.Int("product_id", productID),
		zap.String("notice", msg),
		zap.Error(err))
	s.notifier.Notify(msg)
	return err
}
