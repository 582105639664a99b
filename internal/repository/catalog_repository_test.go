package repository_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moicano/lojinha/internal/domain"
	"github.com/moicano/lojinha/internal/port"
	"github.com/moicano/lojinha/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/currency"
)

type catalogRepositorySuite struct {
	suite.Suite

	repo      port.CatalogRepository
	favorites port.FavoriteRepository
	pool      *pgxpool.Pool
}

// entry point to run the tests in the suite
func TestCatalogRepositorySuite(t *testing.T) {
	suite.Run(t, new(catalogRepositorySuite))
}

// before all tests in the suite
func (suite *catalogRepositorySuite) SetupSuite() {
	ctx := suite.T().Context()

	_, connStr, err := startPostgres(ctx)
	suite.NoError(err)

	suite.pool, err = pgxpool.New(ctx, connStr)
	suite.NoError(err)

	suite.repo, err = repository.NewCatalog(suite.pool)
	suite.NoError(err)

	suite.favorites, err = repository.NewFavorites(suite.pool)
	suite.NoError(err)
}

// after all tests in the suite
func (suite *catalogRepositorySuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *catalogRepositorySuite) TestCreateGetProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	categoryID, err := suite.repo.CreateCategory(ctx, randomCategory())
	require.NoError(t, err)
	categoryName, err := suite.repo.GetCategoryName(ctx, categoryID)
	require.NoError(t, err)

	tests := []struct {
		name    string
		product domain.Product
	}{
		{
			name:    "uncategorized product: ok",
			product: randomProduct(),
		},
		{
			name: "product with category: ok",
			product: func() domain.Product {
				p := randomProduct()
				p.CategoryID = &categoryID
				p.CategoryName = &categoryName
				return p
			}(),
		},
		{
			name: "pharmacy fields survive the round trip: ok",
			product: func() domain.Product {
				p := randomProduct()
				p.Dosage = "500mg"
				p.RequiresPrescription = true
				return p
			}(),
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			id, err := suite.repo.CreateProduct(ctx, tt.product)
			require.NoError(t, err)

			actual, err := suite.repo.GetProduct(ctx, id)
			require.NoError(t, err)

			expected := tt.product
			expected.ID = id
			assertProduct(t, expected, actual)
		})
	}
}

func (suite *catalogRepositorySuite) TestGetProduct_NotFound() {
	t := suite.T()

	_, err := suite.repo.GetProduct(t.Context(), 424242)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) TestSetStock() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	productID := suite.createProduct(10)

	tests := []struct {
		name      string
		productID int64
		quantity  int32
		wantErr   error
	}{
		{name: "set stock: ok", productID: productID, quantity: 3},
		{name: "set stock to zero: ok", productID: productID, quantity: 0},
		{name: "negative stock: error", productID: productID, quantity: -1, wantErr: domain.ErrInvalidQuantity},
		{name: "unknown product: error", productID: 424242, quantity: 5, wantErr: domain.ErrProductNotFound},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			err := suite.repo.SetStock(ctx, tt.productID, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			product, err := suite.repo.GetProduct(ctx, tt.productID)
			require.NoError(t, err)
			assert.Equal(t, tt.quantity, product.Quantity)
		})
	}
}

func (suite *catalogRepositorySuite) TestReserveStock() {
	defer suite.deleteAll()

	tests := []struct {
		name      string
		stock     int32
		quantity  int32
		wantErr   error
		wantStock int32
	}{
		{name: "reserve part of the stock: ok", stock: 5, quantity: 3, wantStock: 2},
		{name: "reserve the whole stock: ok", stock: 2, quantity: 2, wantStock: 0},
		{name: "reserve more than available: error, stock untouched", stock: 1, quantity: 2, wantErr: domain.ErrInsufficientStock, wantStock: 1},
		{name: "zero quantity: error", stock: 5, quantity: 0, wantErr: domain.ErrInvalidQuantity, wantStock: 5},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			productID := suite.createProduct(tt.stock)

			err := suite.repo.ReserveStock(ctx, productID, tt.quantity)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			product, err := suite.repo.GetProduct(ctx, productID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStock, product.Quantity)
		})
	}
}

func (suite *catalogRepositorySuite) TestReserveStock_UnknownProduct() {
	t := suite.T()

	err := suite.repo.ReserveStock(t.Context(), 424242, 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) TestListProductsByCategory() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	categoryID, err := suite.repo.CreateCategory(ctx, randomCategory())
	require.NoError(t, err)

	inCategory := randomProduct()
	inCategory.CategoryID = &categoryID
	_, err = suite.repo.CreateProduct(ctx, inCategory)
	require.NoError(t, err)

	_, err = suite.repo.CreateProduct(ctx, randomProduct())
	require.NoError(t, err)

	products, err := suite.repo.ListProductsByCategory(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, inCategory.Name, products[0].Name)

	all, err := suite.repo.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func (suite *catalogRepositorySuite) TestUpdateProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	productID := suite.createProduct(7)

	product, err := suite.repo.GetProduct(ctx, productID)
	require.NoError(t, err)

	product.Name = gofakeit.ProductName()
	product.Price = domain.Money{Amount: decimal.RequireFromString("19.90"), Currency: currency.BRL}

	require.NoError(t, suite.repo.UpdateProduct(ctx, product))

	actual, err := suite.repo.GetProduct(ctx, productID)
	require.NoError(t, err)
	assertProduct(t, product, actual)

	missing := product
	missing.ID = 424242
	err = suite.repo.UpdateProduct(ctx, missing)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) TestDeleteProduct() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	productID := suite.createProduct(1)

	require.NoError(t, suite.repo.DeleteProduct(ctx, productID))

	_, err := suite.repo.GetProduct(ctx, productID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	err = suite.repo.DeleteProduct(ctx, productID)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) TestCategoryLifecycle() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	category := randomCategory()
	categoryID, err := suite.repo.CreateCategory(ctx, category)
	require.NoError(t, err)

	actual, err := suite.repo.GetCategory(ctx, categoryID)
	require.NoError(t, err)
	assert.Equal(t, category.Name, actual.Name)
	assert.Equal(t, category.Description, actual.Description)

	actual.Description = gofakeit.Sentence(4)
	require.NoError(t, suite.repo.UpdateCategory(ctx, actual))

	categories, err := suite.repo.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)

	_, err = suite.repo.GetCategoryName(ctx, 424242)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)

	require.NoError(t, suite.repo.DeleteCategory(ctx, categoryID))
	_, err = suite.repo.GetCategory(ctx, categoryID)
	require.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func (suite *catalogRepositorySuite) TestDeleteCategory_InUse() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	categoryID, err := suite.repo.CreateCategory(ctx, randomCategory())
	require.NoError(t, err)

	product := randomProduct()
	product.CategoryID = &categoryID
	_, err = suite.repo.CreateProduct(ctx, product)
	require.NoError(t, err)

	err = suite.repo.DeleteCategory(ctx, categoryID)
	require.ErrorIs(t, err, domain.ErrCategoryInUse)

	// still there
	_, err = suite.repo.GetCategory(ctx, categoryID)
	require.NoError(t, err)
}

func (suite *catalogRepositorySuite) TestFavorites() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	productID := suite.createProduct(3)

	require.NoError(t, suite.favorites.Add(ctx, productID))
	// favoriting twice is idempotent
	require.NoError(t, suite.favorites.Add(ctx, productID))

	favorites, err := suite.favorites.List(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, productID, favorites[0].ID)

	removed, err := suite.favorites.Remove(ctx, productID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = suite.favorites.Remove(ctx, productID)
	require.NoError(t, err)
	assert.False(t, removed)

	err = suite.favorites.Add(ctx, 424242)
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

func (suite *catalogRepositorySuite) createProduct(stock int32) int64 {
	product := randomProduct()
	product.Quantity = stock

	id, err := suite.repo.CreateProduct(suite.T().Context(), product)
	suite.NoError(err)

	return id
}

func (suite *catalogRepositorySuite) deleteAll() {
	_, err := suite.pool.Exec(suite.T().Context(),
		"TRUNCATE TABLE order_items, orders, favorites, products, categories CASCADE")
	suite.NoError(err)
}

func randomProduct() domain.Product {
	return domain.Product{
		Name:        gofakeit.ProductName(),
		Description: gofakeit.Sentence(5),
		Price:       randomMoney(),
		Quantity:    int32(gofakeit.Number(1, 50)),
	}
}

func randomCategory() domain.Category {
	return domain.Category{
		Name:        gofakeit.ProductCategory(),
		Description: gofakeit.Sentence(4),
	}
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)),
		Currency: currency.BRL,
	}
}

func assertProduct(t *testing.T, expected, actual domain.Product) {
	t.Helper()

	diff := cmp.Diff(expected, actual, productCmpOpts())
	assert.Empty(t, diff)

	assert.False(t, actual.CreatedAt.IsZero())
}

func productCmpOpts() cmp.Options {
	currencyComparer := cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer := cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})

	return cmp.Options{
		cmpopts.IgnoreFields(domain.Product{}, "CreatedAt"),
		currencyComparer,
		decimalComparer,
	}
}
