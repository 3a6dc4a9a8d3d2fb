package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/port"
)

// ResolvedItem is one order line with current catalog name and price
// attached.
type ResolvedItem struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	Qty       int
}

// PricingResolver resolves requested (product, qty) lines against the
// catalog. Resolution is all-or-nothing: one missing product fails the
// whole set.
type PricingResolver struct {
	Catalog port.CatalogRepository
}

// Resolve fetches all distinct referenced products in a single batched
// query. Duplicate product ids in the input are resolved independently,
// one output line per input line, quantities are never merged.
func (r *PricingResolver) Resolve(ctx context.Context, items []domain.ItemInput) ([]ResolvedItem, error) {
	for _, it := range items {
		if it.Qty <= 0 {
			return nil, domain.ValidationError{
				Field:  "items.qty",
				Reason: fmt.Sprintf("must be positive, got %d for product %s", it.Qty, it.ProductID),
			}
		}
	}

	ids := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ProductID)
	}

	products, err := r.Catalog.GetProducts(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetProducts: %w", err)
	}

	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var missing []uuid.UUID
	seen := make(map[uuid.UUID]struct{}, len(items))
	for _, it := range items {
		if _, ok := byID[it.ProductID]; ok {
			continue
		}
		if _, dup := seen[it.ProductID]; dup {
			continue
		}
		seen[it.ProductID] = struct{}{}
		missing = append(missing, it.ProductID)
	}
	if len(missing) > 0 {
		return nil, domain.ProductNotFoundError{IDs: missing}
	}

	resolved := make([]ResolvedItem, 0, len(items))
	for _, it := range items {
		p := byID[it.ProductID]
		resolved = append(resolved, ResolvedItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Qty:       it.Qty,
		})
	}
	return resolved, nil
}
