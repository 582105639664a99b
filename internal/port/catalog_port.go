package port

import (
	"context"

	"github.com/moicano/lojinha/internal/domain"
)

type CatalogRepository interface {
	CreateProduct(ctx context.Context, product domain.Product) (int64, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID int64) error

	// SetStock writes an absolute quantity, the admin path.
	SetStock(ctx context.Context, productID int64, quantity int32) error
	// ReserveStock decrements atomically and only if enough stock remains,
	// the checkout path.
	ReserveStock(ctx context.Context, productID int64, quantity int32) error

	CreateCategory(ctx context.Context, category domain.Category) (int64, error)
	GetCategory(ctx context.Context, categoryID int64) (domain.Category, error)
	GetCategoryName(ctx context.Context, categoryID int64) (string, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID int64) error
}
