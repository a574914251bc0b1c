package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"sales-campaigns/internal/core/domain"
	"sales-campaigns/internal/core/port"
)

var _ port.ProductRepository = (*ProductRepository)(nil)

const productColumns = `id, name, regular_price::text, sale_price::text, category_ids, tag_ids`

// ProductRepository reads product snapshots from PostgreSQL.
type ProductRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a new repository instance.
func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

// GetProduct returns a product by id or port.ErrProductNotFound.
func (r *ProductRepository) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	p, err := pgx.CollectExactlyOneRow(rows, scanProduct)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ListProducts returns the products among ids that exist, ordered by id.
func (r *ProductRepository) ListProducts(ctx context.Context, ids []int64) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+productColumns+` FROM products WHERE id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanProduct)
}

func scanProduct(row pgx.CollectableRow) (domain.Product, error) {
	var (
		p             domain.Product
		regular, sale *string
	)
	if err := row.Scan(&p.ID, &p.Name, &regular, &sale, &p.CategoryIDs, &p.TagIDs); err != nil {
		return p, err
	}
	var err error
	if p.RegularPrice, err = nullDecimal(regular); err != nil {
		return p, fmt.Errorf("product %d regular price: %w", p.ID, err)
	}
	if p.SalePrice, err = nullDecimal(sale); err != nil {
		return p, fmt.Errorf("product %d sale price: %w", p.ID, err)
	}
	return p, nil
}

func nullDecimal(s *string) (decimal.NullDecimal, error) {
	if s == nil {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}
