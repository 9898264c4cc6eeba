package storagetesting

import (
	"database/sql"
	"os"
	"testing"

	pgmodels "github.com/harbifirsat/shopping-agent/internal/platform/storage/gen/postgres/public/model"
	"github.com/harbifirsat/shopping-agent/internal/platform/storage/gen/postgres/public/table"
	"github.com/go-jet/jet/v2/qrm"

	_ "github.com/lib/pq"
)

// Open opens connection to DB. It skips the test when DATABASE_URL is not
// set, so integration tests don't fail on machines without a database.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		t.Skip("no database URL provided via DATABASE_URL environment variable")
	}

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		t.Fatalf("can't open connection to %q: %s", dbURL, err)
	}

	return db
}

// InsertStores is a helper test function to insert stores.
func InsertStores(t *testing.T, exc qrm.Executable, stores ...pgmodels.Stores) {
	t.Helper()

	if len(stores) == 0 {
		return
	}

	_, err := table.Stores.INSERT(
		table.Stores.AllColumns.Except(table.Stores.CreatedAt),
	).MODELS(stores).Exec(exc)
	if err != nil {
		t.Fatal("can't insert stores", err)
	}
}

// InsertCategories is a helper test function to insert categories.
func InsertCategories(t *testing.T, exc qrm.Executable, categories ...pgmodels.Categories) {
	t.Helper()

	if len(categories) == 0 {
		return
	}

	_, err := table.Categories.INSERT(
		table.Categories.AllColumns.Except(table.Categories.CreatedAt),
	).MODELS(categories).Exec(exc)
	if err != nil {
		t.Fatal("can't insert categories", err)
	}
}

// InsertTags is a helper test function to insert tags.
func InsertTags(t *testing.T, exc qrm.Executable, tags ...pgmodels.Tags) {
	t.Helper()

	if len(tags) == 0 {
		return
	}

	_, err := table.Tags.INSERT(
		table.Tags.AllColumns.Except(table.Tags.CreatedAt),
	).MODELS(tags).Exec(exc)
	if err != nil {
		t.Fatal("can't insert tags", err)
	}
}

// InsertDealAlerts is a helper test function to insert deal alerts.
func InsertDealAlerts(t *testing.T, exc qrm.Executable, alerts ...pgmodels.DealAlerts) {
	t.Helper()

	if len(alerts) == 0 {
		return
	}

	_, err := table.DealAlerts.INSERT(
		table.DealAlerts.AllColumns.Except(table.DealAlerts.CreatedAt),
	).MODELS(alerts).Exec(exc)
	if err != nil {
		t.Fatal("can't insert deal alerts", err)
	}
}

// InsertDeals is a helper test function to insert deals.
func InsertDeals(t *testing.T, exc qrm.Executable, deals ...pgmodels.Deals) {
	t.Helper()

	if len(deals) == 0 {
		return
	}

	_, err := table.Deals.INSERT(
		table.Deals.AllColumns.Except(table.Deals.CreatedAt),
	).MODELS(deals).Exec(exc)
	if err != nil {
		t.Fatal("can't insert deals", err)
	}
}

// GetDeals is a helper test function to get all deals.
func GetDeals(t *testing.T, queryable qrm.Queryable) []pgmodels.Deals {
	t.Helper()

	deals := []pgmodels.Deals{}
	err := table.Deals.SELECT(table.Deals.AllColumns).
		WHERE(table.Deals.ID.IS_NOT_NULL()).
		Query(queryable, &deals)
	if err != nil {
		t.Fatal("can't get deals", err)
	}

	return deals
}

// GetStores is a helper test function to get all stores.
func GetStores(t *testing.T, queryable qrm.Queryable) []pgmodels.Stores {
	t.Helper()

	stores := []pgmodels.Stores{}
	err := table.Stores.SELECT(table.Stores.AllColumns).
		WHERE(table.Stores.ID.IS_NOT_NULL()).
		Query(queryable, &stores)
	if err != nil {
		t.Fatal("can't get stores", err)
	}

	return stores
}

// CleanupData is a helper test function to delete all data.
func CleanupData(t *testing.T, exc qrm.Executable) {
	t.Helper()

	_, err := table.Deals.DELETE().WHERE(table.Deals.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete deals data", err)
	}

	_, err = table.DealAlerts.DELETE().WHERE(table.DealAlerts.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete deal alerts data", err)
	}

	_, err = table.Tags.DELETE().WHERE(table.Tags.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete tags data", err)
	}

	_, err = table.Categories.DELETE().WHERE(table.Categories.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete categories data", err)
	}

	_, err = table.Stores.DELETE().WHERE(table.Stores.ID.IS_NOT_NULL()).Exec(exc)
	if err != nil {
		t.Fatal("can't delete stores data", err)
	}
}
