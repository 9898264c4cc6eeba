package searcher

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/samber/lo"
	"github.com/tidwall/gjson"
)

const (
	defaultSource   = "Unknown"
	defaultCurrency = "USD"
)

// pricePattern extracts the numeric part of formatted prices like "$1,234.56".
var pricePattern = regexp.MustCompile(`[\d,]+\.?\d*`)

// parseProduct normalizes one raw search result item.
// Items without a usable positive price produce no product.
func parseProduct(item gjson.Result) (*models.Product, bool) {
	price, ok := extractPrice(item)
	if !ok {
		return nil, false
	}

	product := models.Product{
		ProductID: item.Get("product_id").String(),
		Title:     item.Get("title").String(),
		Source:    defaultSource,
		Price:     price,
		Currency:  defaultCurrency,
	}

	if source := item.Get("source").String(); source != "" {
		product.Source = source
	}
	if v := item.Get("extracted_old_price"); v.Exists() {
		product.OriginalPrice = lo.ToPtr(v.Float())
	}
	product.Thumbnail = firstString(item, "thumbnail", "serpapi_thumbnail")
	product.ProductLink = firstString(item, "product_link", "link")
	if v := item.Get("rating"); v.Exists() {
		product.Rating = lo.ToPtr(v.Float())
	}
	if v := item.Get("reviews"); v.Exists() {
		product.Reviews = lo.ToPtr(int(v.Int()))
	}
	if v := item.Get("delivery"); v.Exists() {
		product.DeliveryInfo = lo.ToPtr(v.String())
	}
	if v := item.Get("second_hand_condition"); v.Exists() {
		product.Condition = lo.ToPtr(v.String())
	}

	product.DiscountTag = discountTag(item)

	// Back-filled once here; later reads hit the explicit value first.
	if pct, ok := product.EffectiveDiscountPercentage(); ok {
		product.DiscountPercentage = lo.ToPtr(pct)
	}

	return &product, true
}

// extractPrice resolves the item price: the pre-extracted numeric field
// when present, else the numeric part of the formatted price string.
// Zero and negative prices are invalid data, not free items.
func extractPrice(item gjson.Result) (float64, bool) {
	if v := item.Get("extracted_price"); v.Exists() {
		price := v.Float()
		return price, price > 0
	}

	raw := strings.ReplaceAll(item.Get("price").String(), ",", "")
	match := pricePattern.FindString(raw)
	if match == "" {
		return 0, false
	}

	price, err := strconv.ParseFloat(match, 64)
	if err != nil || price <= 0 {
		return 0, false
	}

	return price, true
}

// discountTag prefers the explicit tag field, else adopts the first
// extension badge mentioning "OFF" or a percent sign.
func discountTag(item gjson.Result) *string {
	if tag := item.Get("tag"); tag.Exists() {
		return lo.ToPtr(tag.String())
	}

	for _, ext := range item.Get("extensions").Array() {
		badge := ext.String()
		if strings.Contains(strings.ToUpper(badge), "OFF") || strings.Contains(badge, "%") {
			return lo.ToPtr(badge)
		}
	}

	return nil
}

func firstString(item gjson.Result, keys ...string) *string {
	for _, key := range keys {
		if v := item.Get(key); v.Exists() && v.String() != "" {
			return lo.ToPtr(v.String())
		}
	}

	return nil
}
