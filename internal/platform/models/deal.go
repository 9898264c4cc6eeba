package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// maxDealTitleLength is the title length limit of persisted deals.
const maxDealTitleLength = 200

// DealFromProduct builds a staged deal from a product.
//
// When the product has no original price it is estimated from the discount
// percentage, falling back to the current price when there is no discount
// evidence at all (which renders as a 0% discount). Monetary fields are
// rounded to 2 decimal places and the status is always StatusPending.
func DealFromProduct(product *Product, categoryID, storeID, postedBy *uuid.UUID) *Deal {
	originalPrice := product.Price
	switch {
	case product.OriginalPrice != nil:
		originalPrice = *product.OriginalPrice
	// 100% leaves nothing to divide by, so such tags keep the current price.
	case product.DiscountPercentage != nil &&
		*product.DiscountPercentage > 0 && *product.DiscountPercentage < 100:
		originalPrice = product.Price / (1 - *product.DiscountPercentage/100)
	}

	discountPct, _ := product.EffectiveDiscountPercentage()

	affiliateURL := ""
	if product.ProductLink != nil {
		affiliateURL = *product.ProductLink
	}

	return &Deal{
		Title:              truncate(product.Title, maxDealTitleLength),
		Description:        dealDescription(product),
		OriginalPrice:      round2(originalPrice),
		DiscountedPrice:    round2(product.Price),
		DiscountPercentage: round2(discountPct),
		Currency:           product.Currency,
		AffiliateURL:       affiliateURL,
		ImageURL:           product.Thumbnail,
		StoreID:            storeID,
		CategoryID:         categoryID,
		PostedBy:           postedBy,
		Status:             StatusPending,
	}
}

// dealDescription joins the product's informational fragments with a fixed
// separator in a fixed order. Absent fragments are omitted.
func dealDescription(product *Product) string {
	parts := []string{fmt.Sprintf("Found on %s", product.Source)}

	if product.Rating != nil {
		parts = append(parts, fmt.Sprintf("Rating: %g/5", *product.Rating))
	}
	if product.Reviews != nil {
		parts = append(parts, fmt.Sprintf("(%d reviews)", *product.Reviews))
	}
	if product.DeliveryInfo != nil {
		parts = append(parts, fmt.Sprintf("Delivery: %s", *product.DeliveryInfo))
	}
	if product.Condition != nil {
		parts = append(parts, fmt.Sprintf("Condition: %s", *product.Condition))
	}

	return strings.Join(parts, " | ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}

	return string(runes[:limit])
}
