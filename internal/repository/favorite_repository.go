package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
)

// foreign_key_violation, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const pgForeignKeyViolation = "23503"

type favoriteRepository struct {
	db querier
}

func NewFavorites(pool *pgxpool.Pool) (port.FavoriteRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &favoriteRepository{db: pool}, nil
}

func (r *favoriteRepository) Add(ctx context.Context, productID int64) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO favorites (product_id) VALUES ($1) ON CONFLICT (product_id) DO NOTHING`,
		productID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
		}
		return fmt.Errorf("insert favorite: %w", err)
	}

	return nil
}

func (r *favoriteRepository) Remove(ctx context.Context, productID int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM favorites WHERE product_id = $1`, productID)
	if err != nil {
		return false, fmt.Errorf("delete favorite: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *favoriteRepository) List(ctx context.Context) ([]domain.Product, error) {
	sql := fmt.Sprintf(`SELECT %s
		FROM favorites f
		JOIN products p ON f.product_id = p.id
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY f.created_at`, productColumns)

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scanProduct: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return products, nil
}
