package service

import (
	"context"
	"log/slog"

	"github.com/itemshop/storefront/internal/cache"
	"github.com/itemshop/storefront/internal/cart"
	"github.com/itemshop/storefront/internal/config"
	"github.com/itemshop/storefront/internal/errors"
	"github.com/itemshop/storefront/internal/models"
	"github.com/itemshop/storefront/pkg/commerce"
	"github.com/microcosm-cc/bluemonday"
)

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	ReconcileCart(products []models.Product, cartIDs []int64) *models.CartSnapshot
}

type catalogService struct {
	client    commerce.Client
	cache     cache.Cache
	cacheCfg  *config.CacheConfig
	sanitizer *bluemonday.Policy
}

func NewCatalogService(client commerce.Client, productCache cache.Cache, cacheCfg *config.CacheConfig) CatalogService {
	return &catalogService{
		client:    client,
		cache:     productCache,
		cacheCfg:  cacheCfg,
		// Product text comes from a remote system; strip anything that is
		// not plain user-generated content before it reaches a renderer.
		sanitizer: bluemonday.UGCPolicy(),
	}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	var products []models.Product

	found, err := s.cache.Get(ctx, cache.CatalogKey, &products)
	if err != nil {
		// Cache trouble must never take the catalog down.
		slog.Warn("Catalog cache read failed", slog.String("error", err.Error()))
	}

	if found {
		return products, nil
	}

	products, err = s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	for i := range products {
		s.sanitize(&products[i])
	}

	if err := s.cache.Set(ctx, cache.CatalogKey, products, s.cacheCfg.CatalogTTL); err != nil {
		slog.Warn("Catalog cache write failed", slog.String("error", err.Error()))
	}

	return products, nil
}

// GetProduct reports every failure as "not found", network faults included.
// The storefront has always behaved this way; the detail page shows "Product
// not found" no matter what actually went wrong upstream.
func (s *catalogService) GetProduct(ctx context.Context, id int64) (*models.Product, error) {

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, errors.NotFoundError("Product not found").WithError(err)
	}

	s.sanitize(product)

	return product, nil
}

// ReconcileCart joins cart ids with catalog records, in catalog order. Ids
// absent from the catalog are silently dropped from the snapshot; the cookie
// is not corrected, so a stale entry persists until its product reappears or
// it is removed by hand.
func (s *catalogService) ReconcileCart(products []models.Product, cartIDs []int64) *models.CartSnapshot {

	quantities := cart.Quantities(cartIDs)
	snapshot := &models.CartSnapshot{}

	for _, product := range products {

		quantity, inCart := quantities[product.ID]
		if !inCart {
			continue
		}

		snapshot.Lines = append(snapshot.Lines, models.CartLine{
			Product:  product,
			Quantity: quantity,
		})
	}

	return snapshot
}

func (s *catalogService) sanitize(product *models.Product) {
	product.Name = s.sanitizer.Sanitize(product.Name)
	product.Description = s.sanitizer.Sanitize(product.Description)
}
