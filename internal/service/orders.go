package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/port"
)

const (
	DefaultPageLimit = 10
)

// OrderService assembles new orders and reconstructs denormalized order
// views for reads.
type OrderService struct {
	Orders  port.OrderRepository
	Pricing *PricingResolver
}

func NewOrderService(orders port.OrderRepository, catalog port.CatalogRepository) *OrderService {
	return &OrderService{
		Orders:  orders,
		Pricing: &PricingResolver{Catalog: catalog},
	}
}

// CreateOrder validates the request, snapshots current catalog prices
// into the line items and persists the order in a single atomic insert.
// The stored total always equals the sum of the stored item totals: both
// are computed here from the same resolved prices with decimal
// arithmetic, never recomputed later.
func (s *OrderService) CreateOrder(ctx context.Context, userID string, items []domain.ItemInput) (uuid.UUID, error) {
	if userID == "" {
		return uuid.Nil, domain.ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if len(items) == 0 {
		return uuid.Nil, domain.ValidationError{Field: "items", Reason: "must not be empty"}
	}

	resolved, err := s.Pricing.Resolve(ctx, items)
	if err != nil {
		return uuid.Nil, err
	}

	total := decimal.Zero
	orderItems := make([]domain.OrderItem, 0, len(resolved))
	for _, line := range resolved {
		itemTotal := line.Price.Mul(decimal.NewFromInt(int64(line.Qty)))
		total = total.Add(itemTotal)
		orderItems = append(orderItems, domain.OrderItem{
			ProductID: line.ProductID,
			Qty:       line.Qty,
			Price:     line.Price,
			ItemTotal: itemTotal,
		})
	}

	orderID, err := s.Orders.InsertOrder(ctx, domain.Order{
		UserID:    userID,
		Items:     orderItems,
		Total:     total,
		Status:    domain.StatusCreated,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("orders.InsertOrder: %w", err)
	}
	return orderID, nil
}

// ListUserOrders returns one page of a user's orders, newest first, each
// line item joined against the catalog to embed product details. All
// referenced products of the page are fetched in one batched query. A
// product that no longer exists leaves that line's productDetails null;
// the snapshot price data stays intact.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]domain.OrderView, domain.Page, error) {
	var page domain.Page

	if userID == "" {
		return nil, page, domain.ValidationError{Field: "userId", Reason: "must not be empty"}
	}
	if limit < 0 {
		return nil, page, domain.ValidationError{Field: "limit", Reason: "must not be negative"}
	}
	if offset < 0 {
		return nil, page, domain.ValidationError{Field: "offset", Reason: "must not be negative"}
	}

	orders, err := s.Orders.ListUserOrders(ctx, userID, limit, offset)
	if err != nil {
		return nil, page, fmt.Errorf("orders.ListUserOrders: %w", err)
	}

	var productIDs []uuid.UUID
	for _, o := range orders {
		for _, item := range o.Items {
			productIDs = append(productIDs, item.ProductID)
		}
	}

	details := make(map[uuid.UUID]domain.ProductDetails)
	if len(productIDs) > 0 {
		products, err := s.Pricing.Catalog.GetProducts(ctx, productIDs)
		if err != nil {
			return nil, page, fmt.Errorf("catalog.GetProducts: %w", err)
		}
		for _, p := range products {
			details[p.ID] = domain.ProductDetails{Name: p.Name, ID: p.ID}
		}
	}

	views := make([]domain.OrderView, 0, len(orders))
	for _, o := range orders {
		view := domain.OrderView{
			ID:    o.ID,
			Total: o.Total,
			Items: make([]domain.OrderItemView, 0, len(o.Items)),
		}
		for _, item := range o.Items {
			itemView := domain.OrderItemView{
				Qty:       item.Qty,
				ItemTotal: item.ItemTotal,
			}
			if d, ok := details[item.ProductID]; ok {
				itemView.ProductDetails = &d
			}
			view.Items = append(view.Items, itemView)
		}
		views = append(views, view)
	}

	return views, domain.NewPage(limit, offset, len(views)), nil
}

// GetOrderStatus looks up a single order's status.
func (s *OrderService) GetOrderStatus(ctx context.Context, orderID uuid.UUID) (domain.Status, error) {
	status, err := s.Orders.GetOrderStatus(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("orders.GetOrderStatus: %w", err)
	}
	return status, nil
}
