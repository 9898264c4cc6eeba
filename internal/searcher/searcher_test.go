package searcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/harbifirsat/shopping-agent/internal/searcher"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var logger = zerolog.Nop()

const resultsPayload = `{
	"shopping_results": [
		{
			"product_id": "111",
			"title": "Running Shoes",
			"source": "SportShop",
			"price": "$89.99",
			"extracted_price": 89.99,
			"extracted_old_price": 179.98,
			"product_link": "https://example.com/shoes",
			"rating": 4.5,
			"reviews": 321
		},
		{
			"product_id": "222",
			"title": "Plain Socks",
			"source": "SockShop",
			"price": "$5.00",
			"extracted_price": 5.0,
			"product_link": "https://example.com/socks"
		},
		{
			"product_id": "333",
			"title": "Broken Item",
			"source": "BadShop",
			"price": "free"
		}
	],
	"inline_shopping_results": [
		{
			"product_id": "444",
			"title": "Discount Jacket",
			"source": "JacketShop",
			"price": "$120.00",
			"extracted_price": 120.0,
			"tag": "40% OFF",
			"product_link": "https://example.com/jacket"
		},
		{
			"product_id": "555",
			"title": "Mystery Sale Hat",
			"source": "HatShop",
			"price": "$15.00",
			"extracted_price": 15.0,
			"tag": "SALE",
			"product_link": "https://example.com/hat"
		}
	]
}`

func TestUnitSearch(t *testing.T) {
	var gotParams map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotParams = singleValues(r)
		w.Write([]byte(resultsPayload))
	})

	query := models.SearchQuery{
		Keyword:  "running shoes",
		OnSale:   true,
		MinPrice: lo.ToPtr(10.5),
		MaxPrice: lo.ToPtr(200.0),
	}

	products, err := client.Search(context.TODO(), query)

	require.NoError(t, err, "shouldn't return any error")

	assert.Equal(t, "google_shopping", gotParams["engine"], "should send configured engine")
	assert.Equal(t, "running shoes", gotParams["q"], "should send the keyword")
	assert.Equal(t, "test-key", gotParams["api_key"], "should send the api key")
	assert.Equal(t, "tr", gotParams["gl"], "should send the country")
	assert.Equal(t, "tr", gotParams["hl"], "should send the language")
	assert.Equal(t, "google.com.tr", gotParams["google_domain"], "should send the google domain")
	assert.Equal(t, "40", gotParams["num"], "should send configured result count")
	assert.Equal(t, "true", gotParams["on_sale"], "should send the sale filter")
	assert.Equal(t, "10.5", gotParams["min_price"], "should send the price floor")
	assert.Equal(t, "200", gotParams["max_price"], "should send the price ceiling")

	// the unpriced item is dropped, both result arrays contribute
	require.Len(t, products, 4, "should parse priced items from both result arrays")
	assert.Equal(t,
		[]string{"111", "222", "444", "555"},
		lo.Map(products, func(p models.Product, _ int) string { return p.ProductID }),
		"should keep payload order, primary results first",
	)

	shoes := products[0]
	assert.Equal(t, 89.99, shoes.Price)
	assert.Equal(t, lo.ToPtr(179.98), shoes.OriginalPrice)
	assert.Equal(t, lo.ToPtr(4.5), shoes.Rating)
	assert.Equal(t, lo.ToPtr(321), shoes.Reviews)
	require.NotNil(t, shoes.DiscountPercentage, "should resolve discount from old price")
	assert.Equal(t, 50.0, *shoes.DiscountPercentage)
}

func TestUnitSearchMinRating(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(resultsPayload))
	})

	products, err := client.Search(context.TODO(), models.SearchQuery{
		Keyword:   "shoes",
		MinRating: lo.ToPtr(4.0),
	})

	require.NoError(t, err, "shouldn't return any error")
	require.Len(t, products, 1, "unrated products should be dropped by the rating floor")
	assert.Equal(t, "111", products[0].ProductID)
}

func TestUnitSearchStatusNotOK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Search(context.TODO(), models.SearchQuery{Keyword: "anything"})

	require.ErrorIs(t, err, searcher.ErrStatusNotOK, "should return status error")
	require.ErrorContains(t, err, "500", "should mention the status code")
}

func TestUnitSearchWithDiscountFilter(t *testing.T) {
	var gotParams map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotParams = singleValues(r)
		w.Write([]byte(resultsPayload))
	})

	testCases := map[string]struct {
		minDiscountPercent float64
		wantIDs            []string
	}{
		"threshold is inclusive": {
			minDiscountPercent: 50.0,
			wantIDs:            []string{"111"},
		},
		"just above threshold excluded": {
			minDiscountPercent: 50.01,
			wantIDs:            []string{},
		},
		"keeps all resolvable discounts at zero": {
			// the "SALE" tagged hat has discount evidence but no
			// resolvable percentage, so it never passes
			minDiscountPercent: 0,
			wantIDs:            []string{"111", "444"},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			products, err := client.SearchWithDiscountFilter(
				context.TODO(),
				models.SearchQuery{Keyword: "shoes"},
				tc.minDiscountPercent,
			)

			require.NoError(t, err, "shouldn't return any error")
			assert.Equal(t, "true", gotParams["on_sale"], "should always force the sale filter")
			assert.Equal(t,
				tc.wantIDs,
				lo.Map(products, func(p models.Product, _ int) string { return p.ProductID }),
				"should keep only products at or above the threshold",
			)
		})
	}
}

func TestUnitSearchMultiple(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "broken" {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(resultsPayload))
	})

	queries := []models.SearchQuery{
		{Keyword: "shoes"},
		{Keyword: "broken"},
	}

	results := client.SearchMultiple(context.TODO(), queries, 50.0)

	require.Len(t, results, 2, "should map every keyword")
	assert.Len(t, results["shoes"], 1, "successful query should keep filtered products")
	assert.Empty(t, results["broken"], "failed query should map to empty list")
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *searcher.Client {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return searcher.NewClient(server.Client(), searcher.Config{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		Engine:       "google_shopping",
		Country:      "tr",
		Language:     "tr",
		GoogleDomain: "google.com.tr",
		NumResults:   40,
	}, &logger)
}

func singleValues(r *http.Request) map[string]string {
	params := make(map[string]string)
	for key, values := range r.URL.Query() {
		params[key] = values[0]
	}
	return params
}
