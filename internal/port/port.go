package port

import (
	"context"

	"github.com/google/uuid"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
)

type CatalogRepository interface {
	InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error)
	GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error)

	// GetProducts batch-fetches by id in a single query. Unknown ids are
	// silently absent from the result, callers decide whether that is an
	// error.
	GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error)

	ListProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error)
}

type OrderRepository interface {
	// InsertOrder persists the order and its items atomically.
	InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error)

	GetOrderStatus(ctx context.Context, orderID uuid.UUID) (domain.Status, error)

	// ListUserOrders returns a user's orders newest first (created_at
	// descending, id descending on ties), items included.
	ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]domain.Order, error)
}
