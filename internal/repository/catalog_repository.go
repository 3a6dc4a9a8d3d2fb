package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/samber/lo"

	"github.com/ariefcatur/go-catalog-orders.git/internal/domain"
	"github.com/ariefcatur/go-catalog-orders.git/internal/port"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type catalogRepository struct {
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{pool: pool}
}

func (r *catalogRepository) InsertProduct(ctx context.Context, product domain.Product) (uuid.UUID, error) {
	productID := uuid.New()

	sizes, err := json.Marshal(emptySizesIfNil(product.Sizes))
	if err != nil {
		return uuid.Nil, fmt.Errorf("json.Marshal sizes: %w", err)
	}

	query, args, err := psql.Insert("products").
		SetMap(map[string]interface{}{
			"id":         productID,
			"name":       product.Name,
			"price":      product.Price,
			"sizes":      string(sizes),
			"created_at": product.CreatedAt,
		}).
		ToSql()
	if err != nil {
		return uuid.Nil, fmt.Errorf("building insert: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return uuid.Nil, domain.StorageError{Op: "catalog.InsertProduct", Err: err}
	}

	return productID, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID uuid.UUID) (domain.Product, error) {
	var p domain.Product

	row := r.pool.QueryRow(ctx,
		`SELECT id, name, price, sizes, created_at FROM products WHERE id = $1`, productID)
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Sizes, &p.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return p, domain.ErrNotFound
		}
		return p, domain.StorageError{Op: "catalog.GetProduct", Err: err}
	}

	return p, nil
}

func (r *catalogRepository) GetProducts(ctx context.Context, productIDs []uuid.UUID) ([]domain.Product, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, name, price, sizes, created_at FROM products WHERE id = ANY($1)`,
		lo.Uniq(productIDs))
	if err != nil {
		return nil, domain.StorageError{Op: "catalog.GetProducts", Err: err}
	}
	defer rows.Close()

	return scanProducts(rows)
}

func (r *catalogRepository) ListProducts(ctx context.Context, filter domain.ProductFilter, limit, offset int) ([]domain.Product, error) {
	builder := psql.Select("id", "name", "price", "sizes", "created_at").
		From("products").
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if filter.Name != nil {
		builder = builder.Where(sq.ILike{"name": "%" + escapeLike(*filter.Name) + "%"})
	}
	if filter.Size != nil {
		membership, err := json.Marshal([]map[string]string{{"size": *filter.Size}})
		if err != nil {
			return nil, fmt.Errorf("json.Marshal size filter: %w", err)
		}
		builder = builder.Where(sq.Expr("sizes @> ?", string(membership)))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("building select: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.StorageError{Op: "catalog.ListProducts", Err: err}
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]domain.Product, error) {
	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Sizes, &p.CreatedAt); err != nil {
			return nil, domain.StorageError{Op: "catalog.scan", Err: err}
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.StorageError{Op: "catalog.rows", Err: err}
	}
	return out, nil
}

// escapeLike neutralizes LIKE metacharacters so a filter value matches
// literally.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

func emptySizesIfNil(sizes []domain.Size) []domain.Size {
	if sizes == nil {
		return []domain.Size{}
	}
	return sizes
}
