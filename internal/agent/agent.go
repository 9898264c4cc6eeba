package agent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name QuerySource --filename query_source.go
//go:generate mockery --name Searcher --filename searcher.go
//go:generate mockery --name DealStore --filename deal_store.go

// QuerySource gathers the search queries to process, highest priority first.
type QuerySource interface {
	Gather(ctx context.Context) ([]models.SearchQuery, error)
}

// Searcher searches the shopping API for discounted products.
type Searcher interface {
	SearchWithDiscountFilter(
		ctx context.Context,
		query models.SearchQuery,
		minDiscountPercent float64,
	) ([]models.Product, error)
}

// DealStore stages deals and resolves store and category records.
type DealStore interface {
	// DealExists reports whether a deal whose stored link contains
	// productID already exists.
	DealExists(ctx context.Context, productID string) (bool, error)
	// GetOrCreateStore resolves a store record by name, creating it when
	// missing, and returns its id.
	GetOrCreateStore(ctx context.Context, name string) (uuid.UUID, error)
	// CreateDeal inserts a staged deal and returns its id.
	CreateDeal(ctx context.Context, deal *models.Deal) (uuid.UUID, error)
	// CategoryIDByName fuzzy-matches a category by name.
	// Returns nil without error when there is no match.
	CategoryIDByName(ctx context.Context, name string) (*uuid.UUID, error)
}

// Pacer waits between consecutive searches to respect the search API's
// rate limits. *rate.Limiter implements it.
type Pacer interface {
	Wait(ctx context.Context) error
}

// RunParams bounds one agent run.
type RunParams struct {
	MaxQueries         int
	MinDiscountPercent float64
	// CreateDeals enables staging found products as pending deals.
	CreateDeals bool
	// CategoryID is assigned to staged deals of queries without their own
	// category.
	CategoryID *uuid.UUID
}

// Agent searches the shopping API for discounted products and stages them
// as pending deals for manual moderation.
type Agent struct {
	queries  QuerySource
	searcher Searcher
	store    DealStore
	pacer    Pacer
	logger   *zerolog.Logger
}

// NewAgent returns new Agent.
func NewAgent(queries QuerySource, searcher Searcher, store DealStore, pacer Pacer, logger *zerolog.Logger) *Agent {
	return &Agent{
		queries:  queries,
		searcher: searcher,
		store:    store,
		pacer:    pacer,
		logger:   logger,
	}
}

// Run gathers queries, truncates them to params.MaxQueries and processes
// them strictly sequentially, pacing between searches. A failing query is
// recorded as "Query '<keyword>': <message>" and never aborts the run;
// the returned error is non-nil only when the run can't start at all.
func (a *Agent) Run(ctx context.Context, params RunParams) (*models.RunResult, error) {
	result := &models.RunResult{Success: true}

	queries, err := a.queries.Gather(ctx)
	if err != nil {
		result.Success = false
		return result, fmt.Errorf("can't gather search queries: %w", err)
	}
	if len(queries) > params.MaxQueries {
		queries = queries[:params.MaxQueries]
	}

	a.logger.Info().
		Int("queries", len(queries)).
		Float64("minDiscountPercent", params.MinDiscountPercent).
		Msg("agent run started")

	for _, query := range queries {
		if err := a.pacer.Wait(ctx); err != nil {
			result.Success = false
			return result, fmt.Errorf("can't pace search queries: %w", err)
		}

		a.logger.Info().Str("keyword", query.Keyword).Msg("searching")

		products, err := a.searcher.SearchWithDiscountFilter(ctx, query, params.MinDiscountPercent)
		if err != nil {
			a.logger.Error().Err(err).Str("keyword", query.Keyword).Msg("can't process query")
			result.AddError(fmt.Sprintf("Query '%s': %s", query.Keyword, err))
			continue
		}

		result.ProductsFound += len(products)
		// Recounted independently of the searcher's filter on purpose.
		result.ProductsWithDiscount += lo.CountBy(products, func(product models.Product) bool {
			return product.HasDiscount()
		})
		result.QueriesProcessed++

		if params.CreateDeals {
			categoryID := query.CategoryID
			if categoryID == nil {
				categoryID = params.CategoryID
			}
			result.DealsCreated += a.ProcessProducts(ctx, products, categoryID, result)
		}
	}

	a.logger.Info().
		Int("queriesProcessed", result.QueriesProcessed).
		Int("productsFound", result.ProductsFound).
		Int("productsWithDiscount", result.ProductsWithDiscount).
		Int("dealsCreated", result.DealsCreated).
		Int("errors", len(result.Errors)).
		Msg("agent run finished")

	return result, nil
}

// RunKeyword runs one ad-hoc query without touching the stored query
// sources, optionally resolving categoryName for deal staging.
func (a *Agent) RunKeyword(
	ctx context.Context,
	keyword string,
	categoryName string,
	params RunParams,
) (*models.RunResult, error) {
	result := &models.RunResult{Success: true}

	var categoryID *uuid.UUID
	if categoryName != "" {
		id, err := a.store.CategoryIDByName(ctx, categoryName)
		if err != nil {
			a.logger.Warn().Err(err).Str("category", categoryName).Msg("can't resolve category")
		} else {
			categoryID = id
		}
	}

	query := models.SearchQuery{Keyword: keyword, OnSale: true}

	products, err := a.searcher.SearchWithDiscountFilter(ctx, query, params.MinDiscountPercent)
	if err != nil {
		result.Success = false
		result.AddError(fmt.Sprintf("Query '%s': %s", keyword, err))
		return result, fmt.Errorf("can't search keyword: %w", err)
	}

	result.ProductsFound = len(products)
	result.ProductsWithDiscount = lo.CountBy(products, func(product models.Product) bool {
		return product.HasDiscount()
	})
	result.QueriesProcessed = 1

	if params.CreateDeals {
		result.DealsCreated = a.ProcessProducts(ctx, products, categoryID, result)
	}

	return result, nil
}

// ProcessProducts stages products as pending deals and returns the number
// created. Products without a link are skipped silently, products whose
// deal already exists are skipped with a debug log; any other per-product
// failure is recorded on result and never aborts the batch.
func (a *Agent) ProcessProducts(
	ctx context.Context,
	products []models.Product,
	categoryID *uuid.UUID,
	result *models.RunResult,
) int {
	created := 0

	for ix := range products {
		product := &products[ix]

		if product.ProductLink == nil || *product.ProductLink == "" {
			continue
		}

		exists, err := a.store.DealExists(ctx, product.ProductID)
		if err != nil {
			// Treated as "not found": staging below fails on its own if
			// the store is really down.
			a.logger.Warn().Err(err).Str("title", product.Title).Msg("can't check deal existence")
		}
		if exists {
			a.logger.Debug().Str("title", product.Title).Msg("deal already exists")
			continue
		}

		storeID, err := a.store.GetOrCreateStore(ctx, product.Source)
		if err != nil {
			a.logger.Error().Err(err).Str("title", product.Title).Msg("can't process product")
			result.AddError(err.Error())
			continue
		}

		deal := models.DealFromProduct(product, categoryID, lo.ToPtr(storeID), nil)

		if _, err := a.store.CreateDeal(ctx, deal); err != nil {
			a.logger.Error().Err(err).Str("title", product.Title).Msg("can't process product")
			result.AddError(err.Error())
			continue
		}

		created++
		a.logger.Info().Str("title", deal.Title).Msg("created deal")
	}

	return created
}
