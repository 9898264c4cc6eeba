package searcher

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

// resultKeys are the payload keys holding raw result items, in the order
// their items are emitted.
var resultKeys = []string{"shopping_results", "inline_shopping_results"}

// Config holds search API settings shared by all requests.
type Config struct {
	APIKey       string
	BaseURL      string
	Engine       string
	Country      string
	Language     string
	GoogleDomain string
	NumResults   int
}

// Client executes shopping searches against the SERP API and normalizes
// raw result items into products.
type Client struct {
	httpClient *http.Client
	cfg        Config
	logger     *zerolog.Logger
}

// NewClient returns new Client. The http client bounds every search with
// its timeout.
func NewClient(httpClient *http.Client, cfg Config, logger *zerolog.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		logger:     logger,
	}
}

// Search executes one raw search and returns all parseable products in
// payload order. Items without a usable price are skipped, a malformed
// item never fails the whole search.
func (c *Client) Search(ctx context.Context, query models.SearchQuery) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("can't build search request: %w", err)
	}
	req.URL.RawQuery = c.buildParams(query).Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("can't get search response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %d", ErrStatusNotOK, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("can't read search response: %w", err)
	}

	payload := gjson.ParseBytes(body)
	products := []models.Product{}
	for _, key := range resultKeys {
		for _, item := range payload.Get(key).Array() {
			product, ok := parseProduct(item)
			if !ok {
				c.logger.Warn().
					Str("keyword", query.Keyword).
					Msg("skipping result without usable price")
				continue
			}
			products = append(products, *product)
		}
	}

	// The search API has no rating parameter, so the floor is applied here.
	if query.MinRating != nil {
		products = lo.Filter(products, func(product models.Product, _ int) bool {
			return product.Rating != nil && *product.Rating >= *query.MinRating
		})
	}

	c.logger.Info().
		Str("keyword", query.Keyword).
		Int("products", len(products)).
		Msg("search finished")

	return products, nil
}

// SearchWithDiscountFilter searches the on-sale subset and keeps only
// products with discount evidence and a resolvable discount percentage of
// at least minDiscountPercent. The threshold is inclusive; 0 still
// requires discount evidence. Payload order is preserved.
func (c *Client) SearchWithDiscountFilter(
	ctx context.Context,
	query models.SearchQuery,
	minDiscountPercent float64,
) ([]models.Product, error) {
	query.OnSale = true

	products, err := c.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	discounted := lo.Filter(products, func(product models.Product, _ int) bool {
		if !product.HasDiscount() {
			return false
		}
		pct, ok := product.EffectiveDiscountPercentage()
		return ok && pct >= minDiscountPercent
	})

	c.logger.Info().
		Str("keyword", query.Keyword).
		Float64("minDiscountPercent", minDiscountPercent).
		Int("total", len(products)).
		Int("discounted", len(discounted)).
		Msg("discount filter applied")

	return discounted, nil
}

// SearchMultiple runs the discount-filtered search per query sequentially.
// A failing query maps to an empty product list and the batch continues.
func (c *Client) SearchMultiple(
	ctx context.Context,
	queries []models.SearchQuery,
	minDiscountPercent float64,
) map[string][]models.Product {
	results := make(map[string][]models.Product, len(queries))

	for _, query := range queries {
		products, err := c.SearchWithDiscountFilter(ctx, query, minDiscountPercent)
		if err != nil {
			c.logger.Error().
				Err(err).
				Str("keyword", query.Keyword).
				Msg("can't search query")
			results[query.Keyword] = []models.Product{}
			continue
		}
		results[query.Keyword] = products
	}

	return results
}
