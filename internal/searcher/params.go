package searcher

import (
	"net/url"
	"strconv"

	"github.com/harbifirsat/shopping-agent/internal/platform/models"
)

// buildParams builds search API parameters from a query, adding only the
// filters the query carries.
func (c *Client) buildParams(query models.SearchQuery) url.Values {
	params := url.Values{}
	params.Set("engine", c.cfg.Engine)
	params.Set("q", query.Keyword)
	params.Set("api_key", c.cfg.APIKey)
	params.Set("gl", c.cfg.Country)
	params.Set("hl", c.cfg.Language)
	params.Set("google_domain", c.cfg.GoogleDomain)

	num := c.cfg.NumResults
	if query.NumResults != nil {
		num = *query.NumResults
	}
	params.Set("num", strconv.Itoa(num))

	if query.OnSale {
		params.Set("on_sale", "true")
	}
	if query.MinPrice != nil {
		params.Set("min_price", formatPrice(*query.MinPrice))
	}
	if query.MaxPrice != nil {
		params.Set("max_price", formatPrice(*query.MaxPrice))
	}
	if query.SortBy != nil && *query.SortBy != "" {
		params.Set("sort_by", *query.SortBy)
	}
	if query.TimePeriod != nil {
		params.Set("tbs", *query.TimePeriod)
	}
	if query.Condition != nil {
		params.Set("condition", *query.Condition)
	}
	if query.FreeShipping {
		params.Set("free_shipping", "true")
	}
	if query.LocalSellers {
		params.Set("local_sellers", "true")
	}

	return params
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
