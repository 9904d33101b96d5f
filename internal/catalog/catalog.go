// Package catalog exposes the buyer-facing catalog: shops, categories and
// searchable variants.
package catalog

import (
	"context"

	"github.com/retail-automation/orders/internal/platform/models"
	"github.com/retail-automation/orders/internal/platform/storage"
)

// Storage is catalog storage.
type Storage interface {
	ListShops(ctx context.Context, onlyAccepting bool) ([]models.Shop, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	SearchVariants(ctx context.Context, filter storage.VariantFilter) ([]models.Variant, error)
}

// Service is the catalog browse service.
type Service struct {
	storage Storage
}

// NewService returns new Service.
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// Shops returns shops currently accepting orders with their delivery tiers.
func (s *Service) Shops(ctx context.Context) ([]models.Shop, error) {
	return s.storage.ListShops(ctx, true)
}

// Categories returns all catalog categories.
func (s *Service) Categories(ctx context.Context) ([]models.Category, error) {
	return s.storage.ListCategories(ctx)
}

// Search returns sellable variants, optionally narrowed to one shop or one
// category. Variants of shops not accepting orders are never returned.
func (s *Service) Search(ctx context.Context, shopID, categoryID *int) ([]models.Variant, error) {
	return s.storage.SearchVariants(ctx, storage.VariantFilter{
		ShopID:     shopID,
		CategoryID: categoryID,
	})
}
