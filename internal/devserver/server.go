// Package devserver serves a product/stock catalog from a JSON fixture, for
// local development and tests when the real service is not available.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jacksmith/rocketcart/internal/model"
)

// Data is the fixture layout: {"products": [...], "stock": [...]}.
type Data struct {
	Products []model.Product `json:"products"`
	Stock    []model.Stock   `json:"stock"`
}

// LoadData reads a fixture file.
func LoadData(path string) (*Data, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture %s: %w", path, err)
	}
	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return &data, nil
}

type handler struct {
	products []model.Product
	byID     map[int]model.Product
	stock    map[int]model.Stock
}

func newHandler(data *Data) *handler {
	h := &handler{
		products: data.Products,
		byID:     make(map[int]model.Product, len(data.Products)),
		stock:    make(map[int]model.Stock, len(data.Stock)),
	}
	for _, p := range data.Products {
		h.byID[p.ID] = p
	}
	for _, s := range data.Stock {
		h.stock[s.ID] = s
	}
	return h
}

// New wires the Gin engine with the catalog routes.
func New(data *Data, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	h := newHandler(data)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	r.GET("/products", h.listProducts)
	r.GET("/products/:id", h.getProduct)
	r.GET("/stock/:id", h.getStock)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func (h *handler) listProducts(c *gin.Context) {
	products := h.products
	if products == nil {
		products = []model.Product{}
	}
	c.JSON(http.StatusOK, products)
}

func (h *handler) getProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	p, found := h.byID[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *handler) getStock(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	s, found := h.stock[id]
	if !found {
		c.JSON(http.StatusNotFound, gin.H{})
		return
	}
	c.JSON(http.StatusOK, s)
}

func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)))
	}
}
