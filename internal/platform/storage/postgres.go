package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/harbifirsat/shopping-agent/internal/platform/models"
	"github.com/harbifirsat/shopping-agent/internal/platform/storage/gen/postgres/public/table"

	pgmodels "github.com/harbifirsat/shopping-agent/internal/platform/storage/gen/postgres/public/model"
	pg "github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

// Postgres is storage for deals, stores, categories and deal alerts.
type Postgres struct {
	db *sql.DB
}

// NewPostgres returns new Postgres.
func NewPostgres(db *sql.DB) Postgres {
	return Postgres{
		db: db,
	}
}

// ActiveAlertQueries returns a search query per active deal alert. The
// query keyword joins the alert's keyword with the names of its category
// and tag; alerts resolving to an empty keyword are skipped.
func (p Postgres) ActiveAlertQueries(ctx context.Context) ([]models.SearchQuery, error) {
	var rows []alertRow

	err := pg.SELECT(
		table.DealAlerts.AllColumns,
		table.Categories.AllColumns,
		table.Tags.AllColumns,
	).
		FROM(table.DealAlerts.
			LEFT_JOIN(table.Categories, table.Categories.ID.EQ(table.DealAlerts.CategoryID)).
			LEFT_JOIN(table.Tags, table.Tags.ID.EQ(table.DealAlerts.TagID)),
		).
		WHERE(table.DealAlerts.IsActive.IS_TRUE()).
		ORDER_BY(table.DealAlerts.CreatedAt.ASC()).
		QueryContext(ctx, p.db, &rows)
	if err != nil {
		return nil, fmt.Errorf("can't get deal alerts from database: %w", err)
	}

	queries := make([]models.SearchQuery, 0, len(rows))
	for ix := range rows {
		query := toSearchQuery(&rows[ix])
		if query.Keyword == "" {
			continue
		}
		queries = append(queries, query)
	}

	return queries, nil
}

// TopDealTitles returns titles of approved deals ordered by popularity,
// at most limit of them.
func (p Postgres) TopDealTitles(ctx context.Context, limit int) ([]string, error) {
	var deals []pgmodels.Deals

	err := table.Deals.SELECT(table.Deals.Title).
		WHERE(table.Deals.Status.EQ(pg.String(string(models.StatusApproved)))).
		ORDER_BY(table.Deals.ClickCount.DESC(), table.Deals.VotesTotal.DESC()).
		LIMIT(int64(limit)).
		QueryContext(ctx, p.db, &deals)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("can't get deal titles from database: %w", err)
	}

	titles := make([]string, 0, len(deals))
	for ix := range deals {
		titles = append(titles, deals[ix].Title)
	}

	return titles, nil
}

// GetOrCreateStore returns the id of the store with the given name,
// creating the store when it doesn't exist yet.
func (p Postgres) GetOrCreateStore(ctx context.Context, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)

	var id uuid.UUID
	err := runInTransaction(ctx, p.db, func(tx *sql.Tx) error {
		var store pgmodels.Stores
		err := table.Stores.SELECT(table.Stores.ID).
			WHERE(table.Stores.Name.EQ(pg.String(name))).
			LIMIT(1).
			QueryContext(ctx, tx, &store)
		if err == nil {
			id = store.ID
			return nil
		}
		if !errors.Is(err, qrm.ErrNoRows) {
			return fmt.Errorf("can't get store from database: %w", err)
		}

		newStore := pgmodels.Stores{
			Name: name,
			Slug: storeSlug(name),
		}
		err = table.Stores.INSERT(
			table.Stores.Name,
			table.Stores.Slug,
		).
			MODEL(newStore).
			RETURNING(table.Stores.ID).
			QueryContext(ctx, tx, &newStore)
		if err != nil {
			return fmt.Errorf("can't insert store into database: %w", err)
		}

		id = newStore.ID

		return nil
	})
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("can't get or create store: %w", err)
	}

	return id, nil
}

// DealExists reports whether any deal's affiliate URL contains productID,
// case-insensitively. An empty productID never matches.
func (p Postgres) DealExists(ctx context.Context, productID string) (bool, error) {
	if productID == "" {
		return false, nil
	}

	var deal pgmodels.Deals
	err := table.Deals.SELECT(table.Deals.ID).
		WHERE(pg.LOWER(table.Deals.AffiliateURL).
			LIKE(pg.LOWER(pg.String("%" + productID + "%")))).
		LIMIT(1).
		QueryContext(ctx, p.db, &deal)

	if errors.Is(err, qrm.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("can't get deal from database: %w", err)
	}

	return true, nil
}

// CreateDeal inserts a deal with a freshly generated slug and returns the
// id of the created record.
func (p Postgres) CreateDeal(ctx context.Context, deal *models.Deal) (uuid.UUID, error) {
	dbDeal := toDBDeal(deal)

	err := table.Deals.INSERT(
		table.Deals.AllColumns.Except(
			table.Deals.ID,
			table.Deals.ClickCount,
			table.Deals.VotesTotal,
			table.Deals.CreatedAt,
		),
	).
		MODEL(dbDeal).
		RETURNING(table.Deals.ID).
		QueryContext(ctx, p.db, dbDeal)
	if err != nil {
		return uuid.UUID{}, fmt.Errorf("can't insert deal into database: %w", err)
	}

	return dbDeal.ID, nil
}

// CategoryIDByName fuzzy-matches a category by name, case-insensitively.
// It returns nil without error when nothing matches.
func (p Postgres) CategoryIDByName(ctx context.Context, name string) (*uuid.UUID, error) {
	var category pgmodels.Categories
	err := table.Categories.SELECT(table.Categories.ID).
		WHERE(pg.LOWER(table.Categories.Name).
			LIKE(pg.LOWER(pg.String("%" + name + "%")))).
		LIMIT(1).
		QueryContext(ctx, p.db, &category)

	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("can't get category from database: %w", err)
	}

	return &category.ID, nil
}

func runInTransaction(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	var (
		tx  *sql.Tx
		err error
	)

	if tx, err = db.BeginTx(ctx, nil); err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("can't rollback transaction: %w (rollback reason: %w)", rbErr, err)
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("can't commit transaction: %w", err)
	}

	return nil
}
