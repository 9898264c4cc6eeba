package agent_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/google/uuid"
	"github.com/harbifirsat/shopping-agent/internal/agent"
	"github.com/harbifirsat/shopping-agent/internal/agent/mocks"
	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/harbifirsat/shopping-agent/internal/platform/models/modelstesting"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

var logger = zerolog.Nop()

func TestUnitRun(t *testing.T) {
	queries := fakeQueries(7)
	failing := queries[2]

	querySource := mocks.NewQuerySource(t)
	searcher := mocks.NewSearcher(t)
	store := mocks.NewDealStore(t)

	mockGather(querySource, queries, nil)

	wantProducts := 0
	// only the first 5 queries should be searched
	for _, query := range queries[:5] {
		if query.Keyword == failing.Keyword {
			mockSearch(searcher, query, nil, assert.AnError)
			continue
		}
		products := []models.Product{
			modelstesting.FakeDiscountedProduct(),
			modelstesting.FakeDiscountedProduct(),
		}
		wantProducts += len(products)
		mockSearch(searcher, query, products, nil)
	}

	ag := agent.NewAgent(querySource, searcher, store, noPacing(), &logger)

	result, err := ag.Run(context.TODO(), agent.RunParams{
		MaxQueries:         5,
		MinDiscountPercent: 10,
	})

	require.NoError(t, err, "shouldn't return any error")
	assert.True(t, result.Success, "run should be successful despite query errors")
	assert.Equal(t, 4, result.QueriesProcessed, "should process all non-failing queries")
	assert.Equal(t, wantProducts, result.ProductsFound, "should count all returned products")
	assert.Equal(t, wantProducts, result.ProductsWithDiscount, "all faked products are discounted")
	assert.Zero(t, result.DealsCreated, "shouldn't create deals without CreateDeals")
	require.Len(t, result.Errors, 1, "should record failing query error")
	assert.Equal(t,
		fmt.Sprintf("Query '%s': %s", failing.Keyword, assert.AnError),
		result.Errors[0],
		"should record error with the failing keyword",
	)
}

func TestUnitRunGatherError(t *testing.T) {
	querySource := mocks.NewQuerySource(t)
	searcher := mocks.NewSearcher(t)
	store := mocks.NewDealStore(t)

	mockGather(querySource, nil, assert.AnError)

	ag := agent.NewAgent(querySource, searcher, store, noPacing(), &logger)

	result, err := ag.Run(context.TODO(), agent.RunParams{MaxQueries: 5})

	require.ErrorContains(t, err, "can't gather search queries", "should return error about failed gathering")
	require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
	assert.False(t, result.Success, "run shouldn't be successful")
}

func TestUnitRunCreatesDeals(t *testing.T) {
	categoryID := lo.ToPtr(uuid.New())
	storeID := uuid.New()

	query := modelstesting.FakeSearchQuery(func(q *models.SearchQuery) {
		q.CategoryID = nil
	})
	products := []models.Product{
		modelstesting.FakeDiscountedProduct(),
		modelstesting.FakeDiscountedProduct(),
	}

	querySource := mocks.NewQuerySource(t)
	searcher := mocks.NewSearcher(t)
	store := mocks.NewDealStore(t)

	mockGather(querySource, []models.SearchQuery{query}, nil)
	mockSearch(searcher, query, products, nil)
	for _, product := range products {
		mockDealExists(store, product.ProductID, false, nil)
		mockGetOrCreateStore(store, product.Source, storeID, nil)
	}
	store.On("CreateDeal", mock.Anything, mock.AnythingOfType("*models.Deal")).
		Run(func(args mock.Arguments) {
			deal := args.Get(1).(*models.Deal)
			assert.Equal(t, models.StatusPending, deal.Status, "created deals should be pending")
			assert.Equal(t, categoryID, deal.CategoryID, "should fall back to run category")
			require.NotNil(t, deal.StoreID, "should set resolved store id")
			assert.Equal(t, storeID, *deal.StoreID, "should set resolved store id")
		}).
		Return(uuid.New(), nil).
		Times(len(products))

	ag := agent.NewAgent(querySource, searcher, store, noPacing(), &logger)

	result, err := ag.Run(context.TODO(), agent.RunParams{
		MaxQueries:         5,
		MinDiscountPercent: 10,
		CreateDeals:        true,
		CategoryID:         categoryID,
	})

	require.NoError(t, err, "shouldn't return any error")
	assert.Equal(t, len(products), result.DealsCreated, "should create deal per product")
	assert.Empty(t, result.Errors, "shouldn't record any errors")
}

func TestUnitProcessProducts(t *testing.T) {
	t.Run("skips products without link", func(t *testing.T) {
		products := []models.Product{
			modelstesting.FakeDiscountedProduct(),
			modelstesting.FakeDiscountedProduct(func(p *models.Product) { p.ProductLink = nil }),
			modelstesting.FakeDiscountedProduct(),
		}
		storeID := uuid.New()

		store := mocks.NewDealStore(t)
		for _, product := range []models.Product{products[0], products[2]} {
			mockDealExists(store, product.ProductID, false, nil)
			mockGetOrCreateStore(store, product.Source, storeID, nil)
		}
		store.On("CreateDeal", mock.Anything, mock.AnythingOfType("*models.Deal")).
			Return(uuid.New(), nil).
			Times(2)

		ag := newAgent(t, store)
		result := &models.RunResult{Success: true}

		created := ag.ProcessProducts(context.TODO(), products, nil, result)

		assert.Equal(t, 2, created, "should create deals only for linked products")
		assert.Empty(t, result.Errors, "linkless products aren't errors")
	})

	t.Run("skips existing deals", func(t *testing.T) {
		products := []models.Product{modelstesting.FakeDiscountedProduct()}

		store := mocks.NewDealStore(t)
		mockDealExists(store, products[0].ProductID, true, nil)

		ag := newAgent(t, store)
		result := &models.RunResult{Success: true}

		created := ag.ProcessProducts(context.TODO(), products, nil, result)

		assert.Zero(t, created, "shouldn't create deal for existing product")
		assert.Empty(t, result.Errors, "existing deals aren't errors")
	})

	t.Run("treats existence check error as missing deal", func(t *testing.T) {
		products := []models.Product{modelstesting.FakeDiscountedProduct()}
		storeID := uuid.New()

		store := mocks.NewDealStore(t)
		mockDealExists(store, products[0].ProductID, false, assert.AnError)
		mockGetOrCreateStore(store, products[0].Source, storeID, nil)
		store.On("CreateDeal", mock.Anything, mock.AnythingOfType("*models.Deal")).
			Return(uuid.New(), nil).
			Once()

		ag := newAgent(t, store)
		result := &models.RunResult{Success: true}

		created := ag.ProcessProducts(context.TODO(), products, nil, result)

		assert.Equal(t, 1, created, "should still create the deal")
		assert.Empty(t, result.Errors, "existence check errors aren't recorded")
	})

	t.Run("records store errors", func(t *testing.T) {
		products := []models.Product{modelstesting.FakeDiscountedProduct()}

		store := mocks.NewDealStore(t)
		mockDealExists(store, products[0].ProductID, false, nil)
		mockGetOrCreateStore(store, products[0].Source, uuid.UUID{}, assert.AnError)

		ag := newAgent(t, store)
		result := &models.RunResult{Success: true}

		created := ag.ProcessProducts(context.TODO(), products, nil, result)

		assert.Zero(t, created, "shouldn't create any deals")
		require.Len(t, result.Errors, 1, "should record store error")
		assert.Equal(t, assert.AnError.Error(), result.Errors[0], "should record store error message")
	})
}

func TestUnitRunKeyword(t *testing.T) {
	t.Run("searches single keyword", func(t *testing.T) {
		keyword := faker.Word()
		products := []models.Product{
			modelstesting.FakeDiscountedProduct(),
			modelstesting.FakeProduct(),
		}

		querySource := mocks.NewQuerySource(t)
		searcher := mocks.NewSearcher(t)
		store := mocks.NewDealStore(t)

		mockSearch(searcher, models.SearchQuery{Keyword: keyword, OnSale: true}, products, nil)

		ag := agent.NewAgent(querySource, searcher, store, noPacing(), &logger)

		result, err := ag.RunKeyword(context.TODO(), keyword, "", agent.RunParams{MinDiscountPercent: 10})

		require.NoError(t, err, "shouldn't return any error")
		assert.True(t, result.Success, "run should be successful")
		assert.Equal(t, 1, result.QueriesProcessed, "should process one query")
		assert.Equal(t, len(products), result.ProductsFound, "should count all returned products")
		assert.Equal(t, 1, result.ProductsWithDiscount, "should count only discounted products")
	})

	t.Run("resolves category for deals", func(t *testing.T) {
		keyword := faker.Word()
		categoryName := faker.Word()
		categoryID := lo.ToPtr(uuid.New())
		products := []models.Product{modelstesting.FakeDiscountedProduct()}
		storeID := uuid.New()

		querySource := mocks.NewQuerySource(t)
		searcher := mocks.NewSearcher(t)
		store := mocks.NewDealStore(t)

		store.On("CategoryIDByName", mock.Anything, categoryName).Return(categoryID, nil).Once()
		mockSearch(searcher, models.SearchQuery{Keyword: keyword, OnSale: true}, products, nil)
		mockDealExists(store, products[0].ProductID, false, nil)
		mockGetOrCreateStore(store, products[0].Source, storeID, nil)
		store.On("CreateDeal", mock.Anything, mock.AnythingOfType("*models.Deal")).
			Run(func(args mock.Arguments) {
				deal := args.Get(1).(*models.Deal)
				assert.Equal(t, categoryID, deal.CategoryID, "should use resolved category")
			}).
			Return(uuid.New(), nil).
			Once()

		ag := agent.NewAgent(querySource, searcher, store, noPacing(), &logger)

		result, err := ag.RunKeyword(context.TODO(), keyword, categoryName, agent.RunParams{
			MinDiscountPercent: 10,
			CreateDeals:        true,
		})

		require.NoError(t, err, "shouldn't return any error")
		assert.Equal(t, 1, result.DealsCreated, "should create one deal")
	})

	t.Run("search error fails the run", func(t *testing.T) {
		keyword := faker.Word()

		querySource := mocks.NewQuerySource(t)
		searcher := mocks.NewSearcher(t)
		store := mocks.NewDealStore(t)

		mockSearch(searcher, models.SearchQuery{Keyword: keyword, OnSale: true}, nil, assert.AnError)

		ag := agent.NewAgent(querySource, searcher, store, noPacing(), &logger)

		result, err := ag.RunKeyword(context.TODO(), keyword, "", agent.RunParams{MinDiscountPercent: 10})

		require.ErrorContains(t, err, "can't search keyword", "should return error about failed search")
		require.ErrorIs(t, err, assert.AnError, "should return error containing assert.AnError")
		assert.False(t, result.Success, "run shouldn't be successful")
		require.Len(t, result.Errors, 1, "should record the search error")
	})
}

func newAgent(t *testing.T, store *mocks.DealStore) *agent.Agent {
	return agent.NewAgent(mocks.NewQuerySource(t), mocks.NewSearcher(t), store, noPacing(), &logger)
}

func noPacing() *rate.Limiter {
	return rate.NewLimiter(rate.Inf, 0)
}

func fakeQueries(count int) []models.SearchQuery {
	queries := make([]models.SearchQuery, count)
	for ix := range queries {
		queries[ix] = modelstesting.FakeSearchQuery(func(q *models.SearchQuery) {
			q.Keyword = fmt.Sprintf("%s-%d", faker.Word(), ix)
			q.CategoryID = nil
		})
	}
	return queries
}

func mockGather(source *mocks.QuerySource, queries []models.SearchQuery, err error) {
	source.On("Gather", mock.Anything).Return(queries, err).Once()
}

func mockSearch(searcher *mocks.Searcher, query models.SearchQuery, products []models.Product, err error) {
	searcher.On("SearchWithDiscountFilter", mock.Anything, query, mock.AnythingOfType("float64")).
		Return(products, err).
		Once()
}

func mockDealExists(store *mocks.DealStore, productID string, exists bool, err error) {
	store.On("DealExists", mock.Anything, productID).Return(exists, err).Once()
}

func mockGetOrCreateStore(store *mocks.DealStore, name string, id uuid.UUID, err error) {
	store.On("GetOrCreateStore", mock.Anything, name).Return(id, err).Once()
}
