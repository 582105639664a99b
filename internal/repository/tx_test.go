package repository_test

import (
	"github.com/jackc/pgx/v5"
	"github.com/moicano/lojinha/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *catalogRepositorySuite) TestWithTx() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	id, err := repository.WithTx(ctx, suite.pool, func(tx pgx.Tx) (int64, error) {
		return repository.NewCatalogWithTx(tx).CreateCategory(ctx, randomCategory())
	})
	require.NoError(t, err)

	_, err = suite.repo.GetCategory(ctx, id)
	require.NoError(t, err)
}

func (suite *catalogRepositorySuite) TestWithTx_PanicRollsBack() {
	defer suite.deleteAll()

	t := suite.T()
	ctx := t.Context()

	require.PanicsWithValue(t, "kaboom", func() {
		_, _ = repository.WithTx(ctx, suite.pool, func(tx pgx.Tx) (int64, error) {
			_, err := repository.NewCatalogWithTx(tx).CreateCategory(ctx, randomCategory())
			require.NoError(t, err)

			panic("kaboom")
		})
	})

	// nothing committed
	categories, err := suite.repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, categories)

	// the connection went back to the pool clean
	_, err = suite.repo.CreateCategory(ctx, randomCategory())
	require.NoError(t, err)
}
