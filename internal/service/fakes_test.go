package service_test

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
)

// fakeCatalog is an in-memory CatalogRepository used to exercise the
// services without a database.
type fakeCatalog struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[uuid.UUID]domain.Product)}
}

func (f *fakeCatalog) InsertProduct(_ context.Context, product domain.Product) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	product.ID = uuid.New()
	f.products[product.ID] = product
	return product.ID, nil
}

func (f *fakeCatalog) GetProduct(_ context.Context, productID uuid.UUID) (domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p, ok := f.products[productID]
	if !ok {
		return domain.Product{}, domain.ErrNotFound
	}
	return p, nil
}

func (f *fakeCatalog) GetProducts(_ context.Context, productIDs []uuid.UUID) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	seen := make(map[uuid.UUID]struct{}, len(productIDs))
	var out []domain.Product
	for _, id := range productIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeCatalog) ListProducts(_ context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var all []domain.Product
	for _, p := range f.products {
		if filter.Name != nil &&
			!strings.Contains(strings.ToLower(p.Name), strings.ToLower(*filter.Name)) {
			continue
		}
		if filter.Size != nil && !hasSize(p.Sizes, *filter.Size) {
			continue
		}
		all = append(all, p)
	}

	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.Before(all[j].CreatedAt)
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	return window(all, limit, offset), nil
}

// setPrice mutates a stored product's price, simulating a catalog price
// change after orders were created.
func (f *fakeCatalog) setPrice(productID uuid.UUID, price string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	p := f.products[productID]
	p.Price = mustDecimal(price)
	f.products[productID] = p
}

func (f *fakeCatalog) delete(productID uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.products, productID)
}

func hasSize(sizes []domain.Size, size string) bool {
	for _, s := range sizes {
		if s.Size == size {
			return true
		}
	}
	return false
}

// fakeOrders is an in-memory OrderRepository.
type fakeOrders struct {
	mu     sync.Mutex
	orders []domain.Order
}

func (f *fakeOrders) InsertOrder(_ context.Context, order domain.Order) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	order.ID = uuid.New()
	f.orders = append(f.orders, order)
	return order.ID, nil
}

func (f *fakeOrders) GetOrderStatus(_ context.Context, orderID uuid.UUID) (domain.Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, o := range f.orders {
		if o.ID == orderID {
			return o.Status, nil
		}
	}
	return "", domain.ErrNotFound
}

func (f *fakeOrders) ListUserOrders(_ context.Context, userID string, limit, offset int) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var mine []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			mine = append(mine, o)
		}
	}

	sort.Slice(mine, func(i, j int) bool {
		if !mine[i].CreatedAt.Equal(mine[j].CreatedAt) {
			return mine[i].CreatedAt.After(mine[j].CreatedAt)
		}
		return mine[i].ID.String() > mine[j].ID.String()
	})

	return window(mine, limit, offset), nil
}

func (f *fakeOrders) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.orders)
}

func window[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}
