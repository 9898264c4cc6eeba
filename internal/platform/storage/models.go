package storage

import (
	"strings"

	"github.com/harbifirsat/shopping-agent/internal/platform/models"

	pgmodels "github.com/harbifirsat/shopping-agent/internal/platform/storage/gen/postgres/public/model"
)

//go:generate jet -dsn=$DATABASE_URL -schema=public -path=./gen

func toDBDeal(deal *models.Deal) *pgmodels.Deals {
	return &pgmodels.Deals{
		Title:              deal.Title,
		Description:        deal.Description,
		OriginalPrice:      deal.OriginalPrice,
		DiscountedPrice:    deal.DiscountedPrice,
		DiscountPercentage: deal.DiscountPercentage,
		Currency:           deal.Currency,
		AffiliateURL:       deal.AffiliateURL,
		ImageURL:           deal.ImageURL,
		StoreID:            deal.StoreID,
		CategoryID:         deal.CategoryID,
		PostedBy:           deal.PostedBy,
		Status:             string(deal.Status),
		Slug:               dealSlug(deal.Title),
	}
}

// alertRow is a deal alert with its optionally joined category and tag.
type alertRow struct {
	pgmodels.DealAlerts

	Category *pgmodels.Categories
	Tag      *pgmodels.Tags
}

// toSearchQuery converts an alert row into a search query. The keyword
// joins the alert keyword with the category and tag names, skipping absent
// parts.
func toSearchQuery(row *alertRow) models.SearchQuery {
	parts := make([]string, 0, 3)
	if row.Keyword != nil && *row.Keyword != "" {
		parts = append(parts, *row.Keyword)
	}

	query := models.SearchQuery{
		CategoryID: row.CategoryID,
		MaxPrice:   row.MaxPrice,
		OnSale:     true,
		Priority:   1,
	}

	if row.Category != nil && row.Category.Name != "" {
		parts = append(parts, row.Category.Name)
		query.CategoryName = &row.Category.Name
	}
	if row.Tag != nil && row.Tag.Name != "" {
		parts = append(parts, row.Tag.Name)
	}

	query.Keyword = strings.Join(parts, " ")

	return query
}
