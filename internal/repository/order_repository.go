package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/port"
)

type orderRepository struct {
	pool *pgxpool.Pool
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{pool: pool}
}

// InsertOrder writes the order row and its item rows in one transaction,
// so a failed insert leaves nothing behind.
func (r *orderRepository) InsertOrder(ctx context.Context, order domain.Order) (uuid.UUID, error) {
	if len(order.Items) == 0 {
		return uuid.Nil, errors.New("no items in order")
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return uuid.Nil, domain.StorageError{Op: "orders.Begin", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	orderID := uuid.New()
	_, err = tx.Exec(ctx, `
		INSERT INTO orders(id, user_id, total, status, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		orderID, order.UserID, order.Total, string(order.Status), order.CreatedAt,
	)
	if err != nil {
		return uuid.Nil, domain.StorageError{Op: "orders.InsertOrder", Err: err}
	}

	for pos, item := range order.Items {
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items(order_id, pos, product_id, qty, price, item_total)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			orderID, pos, item.ProductID, item.Qty, item.Price, item.ItemTotal,
		)
		if err != nil {
			return uuid.Nil, domain.StorageError{Op: "orders.InsertOrderItem", Err: err}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, domain.StorageError{Op: "orders.Commit", Err: err}
	}
	return orderID, nil
}

func (r *orderRepository) GetOrderStatus(ctx context.Context, orderID uuid.UUID) (domain.Status, error) {
	var s string
	err := r.pool.QueryRow(ctx, `SELECT status FROM orders WHERE id = $1`, orderID).Scan(&s)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", domain.ErrNotFound
		}
		return "", domain.StorageError{Op: "orders.GetOrderStatus", Err: err}
	}
	return domain.Status(s), nil
}

func (r *orderRepository) ListUserOrders(ctx context.Context, userID string, limit, offset int) ([]domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, total, status, created_at
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, domain.StorageError{Op: "orders.ListUserOrders", Err: err}
	}
	defer rows.Close()

	var out []domain.Order
	for rows.Next() {
		var (
			o      domain.Order
			status string
		)
		if err := rows.Scan(&o.ID, &o.UserID, &o.Total, &status, &o.CreatedAt); err != nil {
			return nil, domain.StorageError{Op: "orders.scan", Err: err}
		}
		o.Status = domain.Status(status)
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "orders.rows", Err: err}
	}

	if len(out) == 0 {
		return out, nil
	}

	items, err := r.orderItems(ctx, lo.Map(out, func(o domain.Order, _ int) uuid.UUID {
		return o.ID
	}))
	if err != nil {
		return nil, err
	}

	for i := range out {
		out[i].Items = items[out[i].ID]
	}
	return out, nil
}

// orderItems loads all item rows for the given orders in one query,
// grouped by order id with the original line order preserved.
func (r *orderRepository) orderItems(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]domain.OrderItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT order_id, product_id, qty, price, item_total
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, pos`,
		orderIDs,
	)
	if err != nil {
		return nil, domain.StorageError{Op: "orders.orderItems", Err: err}
	}
	defer rows.Close()

	grouped := make(map[uuid.UUID][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var (
			orderID uuid.UUID
			item    domain.OrderItem
		)
		if err := rows.Scan(&orderID, &item.ProductID, &item.Qty, &item.Price, &item.ItemTotal); err != nil {
			return nil, domain.StorageError{Op: "orders.scanItem", Err: err}
		}
		grouped[orderID] = append(grouped[orderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "orders.itemRows", Err: err}
	}
	return grouped, nil
}
