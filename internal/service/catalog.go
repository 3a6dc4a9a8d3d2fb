package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/port"
)

// CatalogService covers product creation and filtered listing.
type CatalogService struct {
	Catalog port.CatalogRepository
}

func NewCatalogService(catalog port.CatalogRepository) *CatalogService {
	return &CatalogService{Catalog: catalog}
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	if err := product.Validate(); err != nil {
		return uuid.Nil, err
	}

	product.CreatedAt = time.Now().UTC()

	productID, err := s.Catalog.InsertProduct(ctx, product)
	if err != nil {
		return uuid.Nil, fmt.Errorf("catalog.InsertProduct: %w", err)
	}
	return productID, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, domain.Page, error) {
	var page domain.Page

	if limit < 0 {
		return nil, page, domain.ValidationError{Field: "limit", Reason: "must not be negative"}
	}
	if offset < 0 {
		return nil, page, domain.ValidationError{Field: "offset", Reason: "must not be negative"}
	}

	products, err := s.Catalog.ListProducts(ctx, filter, limit, offset)
	if err != nil {
		return nil, page, fmt.Errorf("catalog.ListProducts: %w", err)
	}

	return products, domain.NewPage(limit, offset, len(products)), nil
}
