package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const productColumns = `p.id, p.name, p.description, p.price_amount, p.price_currency,
		p.quantity, p.category_id, c.name AS category_name, p.dosage, p.requires_prescription, p.created_at`

type catalogRepository struct {
	db querier
}

func NewCatalog(pool *pgxpool.Pool) (port.CatalogRepository, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}

	return &catalogRepository{db: pool}, nil
}

func NewCatalogWithTx(tx pgx.Tx) port.CatalogRepository {
	return &catalogRepository{db: tx}
}

func (r *catalogRepository) CreateProduct(ctx context.Context, product domain.Product) (int64, error) {
	if product.Name == "" {
		return 0, fmt.Errorf("product name is empty")
	}
	if product.Quantity < 0 {
		return 0, fmt.Errorf("quantity[%d]: %w", product.Quantity, domain.ErrInvalidQuantity)
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO products (name, description, price_amount, price_currency, quantity, category_id, dosage, requires_prescription)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id`,
		product.Name, product.Description, product.Price.Amount, product.Price.Currency.String(),
		product.Quantity, product.CategoryID, product.Dosage, product.RequiresPrescription).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert product: %w", err)
	}

	return id, nil
}

func (r *catalogRepository) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	sql := fmt.Sprintf(`SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`, productColumns)

	row := r.db.QueryRow(ctx, sql, productID)

	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
		}
		return domain.Product{}, fmt.Errorf("scanProduct: %w", err)
	}

	return product, nil
}

func (r *catalogRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	sql := fmt.Sprintf(`SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		ORDER BY p.id`, productColumns)

	return r.listProducts(ctx, sql)
}

func (r *catalogRepository) ListProductsByCategory(ctx context.Context, categoryID int64) ([]domain.Product, error) {
	sql := fmt.Sprintf(`SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.category_id = $1
		ORDER BY p.name`, productColumns)

	return r.listProducts(ctx, sql, categoryID)
}

func (r *catalogRepository) listProducts(ctx context.Context, sql string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
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

func (r *catalogRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	if product.Quantity < 0 {
		return fmt.Errorf("quantity[%d]: %w", product.Quantity, domain.ErrInvalidQuantity)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products
		 SET name = $2, description = $3, price_amount = $4, price_currency = $5,
		     quantity = $6, category_id = $7, dosage = $8, requires_prescription = $9
		 WHERE id = $1`,
		product.ID, product.Name, product.Description, product.Price.Amount, product.Price.Currency.String(),
		product.Quantity, product.CategoryID, product.Dosage, product.RequiresPrescription)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product[%d]: %w", product.ID, domain.ErrProductNotFound)
	}

	return nil
}

func (r *catalogRepository) DeleteProduct(ctx context.Context, productID int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, productID)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
	}

	return nil
}

func (r *catalogRepository) SetStock(ctx context.Context, productID int64, quantity int32) error {
	if quantity < 0 {
		return fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
	}

	tag, err := r.db.Exec(ctx, `UPDATE products SET quantity = $2 WHERE id = $1`, productID, quantity)
	if err != nil {
		return fmt.Errorf("update stock: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
	}

	return nil
}

// ReserveStock decrements in a single conditional statement so two
// competing checkouts can never both pass a stale stock check.
func (r *catalogRepository) ReserveStock(ctx context.Context, productID int64, quantity int32) error {
	if quantity <= 0 {
		return fmt.Errorf("quantity[%d]: %w", quantity, domain.ErrInvalidQuantity)
	}

	tag, err := r.db.Exec(ctx,
		`UPDATE products SET quantity = quantity - $2 WHERE id = $1 AND quantity >= $2`,
		productID, quantity)
	if err != nil {
		return fmt.Errorf("reserve stock: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var available int32
	err = r.db.QueryRow(ctx, `SELECT quantity FROM products WHERE id = $1`, productID).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("product[%d]: %w", productID, domain.ErrProductNotFound)
	}
	if err != nil {
		return fmt.Errorf("select quantity: %w", err)
	}

	return fmt.Errorf("product[%d] has %d, want %d: %w", productID, available, quantity, domain.ErrInsufficientStock)
}

func (r *catalogRepository) CreateCategory(ctx context.Context, category domain.Category) (int64, error) {
	if category.Name == "" {
		return 0, fmt.Errorf("category name is empty")
	}

	var id int64
	err := r.db.QueryRow(ctx,
		`INSERT INTO categories (name, description) VALUES ($1, $2) RETURNING id`,
		category.Name, category.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert category: %w", err)
	}

	return id, nil
}

func (r *catalogRepository) GetCategory(ctx context.Context, categoryID int64) (domain.Category, error) {
	var category domain.Category
	err := r.db.QueryRow(ctx,
		`SELECT id, name, description, created_at FROM categories WHERE id = $1`, categoryID).
		Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Category{}, fmt.Errorf("category[%d]: %w", categoryID, domain.ErrCategoryNotFound)
	}
	if err != nil {
		return domain.Category{}, fmt.Errorf("select category: %w", err)
	}

	return category, nil
}

func (r *catalogRepository) GetCategoryName(ctx context.Context, categoryID int64) (string, error) {
	category, err := r.GetCategory(ctx, categoryID)
	if err != nil {
		return "", err
	}

	return category.Name, nil
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, description, created_at FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.Description, &category.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows.Err: %w", err)
	}

	return categories, nil
}

func (r *catalogRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE categories SET name = $2, description = $3 WHERE id = $1`,
		category.ID, category.Name, category.Description)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category[%d]: %w", category.ID, domain.ErrCategoryNotFound)
	}

	return nil
}

// DeleteCategory refuses to delete a category still referenced by products.
func (r *catalogRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	var referencing int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM products WHERE category_id = $1`, categoryID).Scan(&referencing)
	if err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if referencing > 0 {
		return fmt.Errorf("category[%d] has %d products: %w", categoryID, referencing, domain.ErrCategoryInUse)
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category[%d]: %w", categoryID, domain.ErrCategoryNotFound)
	}

	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		product       domain.Product
		priceAmount   decimal.Decimal
		priceCurrency string
	)

	err := row.Scan(&product.ID, &product.Name, &product.Description, &priceAmount, &priceCurrency,
		&product.Quantity, &product.CategoryID, &product.CategoryName,
		&product.Dosage, &product.RequiresPrescription, &product.CreatedAt)
	if err != nil {
		return domain.Product{}, err
	}

	parsedCurrency, err := currency.ParseISO(priceCurrency)
	if err != nil {
		return domain.Product{}, fmt.Errorf("currency[%s] is not valid: %w", priceCurrency, err)
	}
	product.Price = domain.Money{Amount: priceAmount, Currency: parsedCurrency}

	return product, nil
}
