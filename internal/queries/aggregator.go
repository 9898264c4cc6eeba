package queries

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

//go:generate mockery --name AlertSource --filename alert_source.go
//go:generate mockery --name TitleSource --filename title_source.go

// Query priorities per source. Alerts always outrank trending keywords,
// whatever priority the stored alert rows carried.
const (
	PriorityAlert    = 10
	PriorityTrending = 5
)

// AlertSource provides search queries derived from stored deal alerts.
type AlertSource interface {
	ActiveAlertQueries(ctx context.Context) ([]models.SearchQuery, error)
}

// TitleSource provides titles of popular approved deals, most popular first.
type TitleSource interface {
	TopDealTitles(ctx context.Context, limit int) ([]string, error)
}

// Aggregator merges alert and trending query sources into one
// priority-ordered, deduplicated query list.
type Aggregator struct {
	alerts        AlertSource
	titles        TitleSource
	trendingLimit int
	logger        *zerolog.Logger
}

// NewAggregator returns new Aggregator mining at most trendingLimit
// trending keywords per gather.
func NewAggregator(alerts AlertSource, titles TitleSource, trendingLimit int, logger *zerolog.Logger) *Aggregator {
	return &Aggregator{
		alerts:        alerts,
		titles:        titles,
		trendingLimit: trendingLimit,
		logger:        logger,
	}
}

// Gather merges alert queries (priority 10) with trending keyword queries
// (priority 5), stable-sorts by priority descending and dedupes
// case-insensitively by keyword, keeping the first occurrence. The result
// is priority-descending, first-wins order.
func (a *Aggregator) Gather(ctx context.Context) ([]models.SearchQuery, error) {
	queries, err := a.alerts.ActiveAlertQueries(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't fetch deal alert queries: %w", err)
	}
	for ix := range queries {
		queries[ix].Priority = PriorityAlert
	}
	a.logger.Info().Int("count", len(queries)).Msg("fetched deal alert queries")

	// Titles are over-fetched; keyword mining trims to the limit.
	titles, err := a.titles.TopDealTitles(ctx, a.trendingLimit*2)
	if err != nil {
		return nil, fmt.Errorf("can't fetch deal titles: %w", err)
	}

	keywords := ExtractKeywords(titles, a.trendingLimit)
	queries = append(queries, lo.Map(keywords, func(keyword string, _ int) models.SearchQuery {
		return models.SearchQuery{
			Keyword:  keyword,
			OnSale:   true,
			Priority: PriorityTrending,
		}
	})...)
	a.logger.Info().Int("count", len(keywords)).Msg("added trending keyword queries")

	sort.SliceStable(queries, func(i, j int) bool {
		return queries[i].Priority > queries[j].Priority
	})

	seen := make(map[string]struct{}, len(queries))
	unique := lo.Filter(queries, func(query models.SearchQuery, _ int) bool {
		keyword := strings.ToLower(query.Keyword)
		if _, ok := seen[keyword]; ok {
			return false
		}
		seen[keyword] = struct{}{}
		return true
	})

	a.logger.Info().Int("count", len(unique)).Msg("gathered unique search queries")

	return unique, nil
}
