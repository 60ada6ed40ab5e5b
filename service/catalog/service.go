package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ngthuong45/flashsale/model"
	"github.com/ngthuong45/flashsale/pkg/memtable"
	"github.com/ngthuong45/flashsale/pkg/otellib"
	"github.com/ngthuong45/flashsale/repository"
	"github.com/ngthuong45/flashsale/service/pricing"
	"go.uber.org/zap"
)

const allProductsKey = "catalog:products"

func productKey(productID int64) string {
	return fmt.Sprintf("catalog:product:%d", productID)
}

// Service is the sanctioned product read path. Stored product records are
// served through a short-lived byte cache and always pass through the
// pricing overlay before leaving this package.
type Service struct {
	provider repository.Provider
	products repository.Product
	overlay  *pricing.Overlay

	table *memtable.MemTable
	ttl   time.Duration

	logger *zap.Logger
}

// NewService ...
func NewService(
	provider repository.Provider, products repository.Product,
	overlay *pricing.Overlay, table *memtable.MemTable,
	ttl time.Duration, logger *zap.Logger,
) *Service {
	return &Service{
		provider: provider,
		products: products,
		overlay:  overlay,

		table: table,
		ttl:   ttl,

		logger: logger,
	}
}

// ListProducts returns the effective view of the whole catalog.
func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	ctx = otellib.ToContext(ctx, s.logger)

	products, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.overlay.Apply(ctx, products), nil
}

// GetProduct returns the effective view of a single product.
func (s *Service) GetProduct(ctx context.Context, productID int64) (model.NullProduct, error) {
	ctx = otellib.ToContext(ctx, s.logger)

	product, err := s.loadOne(ctx, productID)
	if err != nil {
		return model.NullProduct{}, err
	}
	if !product.Valid {
		return model.NullProduct{}, nil
	}

	return model.NullProduct{
		Valid:   true,
		Product: s.overlay.ApplyOne(ctx, product.Product),
	}, nil
}

func (s *Service) ttlSeconds() int {
	return int(s.ttl / time.Second)
}

func (s *Service) loadAll(ctx context.Context) ([]model.Product, error) {
	if data, ok := s.table.Get(allProductsKey); ok {
		var products []model.Product
		if err := json.Unmarshal(data, &products); err == nil {
			return products, nil
		}
		// a corrupted entry falls through to the store
		s.table.Delete(allProductsKey)
	}

	readCtx := s.provider.Readonly(ctx)
	products, err := s.products.ListProducts(readCtx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(products); err == nil {
		s.table.Set(allProductsKey, data, s.ttlSeconds())
	} else {
		otellib.Extract(ctx).Warn("failed to encode products for caching", zap.Error(err))
	}
	return products, nil
}

func (s *Service) loadOne(ctx context.Context, productID int64) (model.NullProduct, error) {
	key := productKey(productID)
	if data, ok := s.table.Get(key); ok {
		var product model.Product
		if err := json.Unmarshal(data, &product); err == nil {
			return model.NullProduct{Valid: true, Product: product}, nil
		}
		s.table.Delete(key)
	}

	readCtx := s.provider.Readonly(ctx)
	product, err := s.products.GetProduct(readCtx, productID)
	if err != nil {
		return model.NullProduct{}, err
	}
	if !product.Valid {
		return model.NullProduct{}, nil
	}

	if data, err := json.Marshal(product.Product); err == nil {
		s.table.Set(key, data, s.ttlSeconds())
	}
	return product, nil
}
