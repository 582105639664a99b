package port

import (
	"context"

	"github.com/moicano/lojinha/internal/domain"
)

type FavoriteRepository interface {
	// Add is idempotent, favoriting twice is not an error.
	Add(ctx context.Context, productID int64) error
	Remove(ctx context.Context, productID int64) (bool, error)
	List(ctx context.Context) ([]domain.Product, error)
}
