//go:build integration || !unit

package mysql_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/shopspring/decimal"

	"nopsync/internal/app"
	"nopsync/internal/domain"
	mysqlrepo "nopsync/internal/storage/mysql"
)

// ---------- small helpers ----------
func mustEnv(t *testing.T, k string) string {
	t.Helper()
	v := os.Getenv(k)
	if v == "" {
		t.Fatalf("%s not set; export it (e.g. MIGRATIONS_DIR=/path/to/migrations)", k)
	}
	return v
}

func applyMigrations(t *testing.T, db *sqlx.DB) {
	t.Helper()
	dir := mustEnv(t, "MIGRATIONS_DIR")

	st, err := os.Stat(dir)
	if err != nil || !st.IsDir() {
		t.Fatalf("MIGRATIONS_DIR=%s is not a directory or missing", dir)
	}

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir: %v", err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sqlx.DB {
	t.Helper()
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}

	runOpts := &dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=nop",
		},
	}
	resource, err := pool.RunWithOptions(runOpts, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	hostPort := resource.GetPort("3306/tcp")
	dsn := fmt.Sprintf("root:%s@tcp(127.0.0.1:%s)/%s?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		"root", hostPort, "nop")

	var db *sqlx.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sqlx.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

func fixedMapper() *app.Mapper {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &app.Mapper{Now: func() time.Time { return now }}
}

// ---------- the test ----------
func TestRepo_MySQL_SyncRoundTrip(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// schema initializer is idempotent
	if err := repo.EnsureExternalIDColumns(ctx); err != nil {
		t.Fatalf("EnsureExternalIDColumns: %v", err)
	}
	if err := repo.EnsureExternalIDColumns(ctx); err != nil {
		t.Fatalf("EnsureExternalIDColumns (second run): %v", err)
	}

	cats := []domain.ExternalCategory{
		{Name: "Beauty", Slug: "beauty"},
		{Name: "Home Decoration", Slug: "home-decoration"},
	}
	catSync := app.NewCategorySync(repo, app.WithCategoryMapper(fixedMapper()))
	res, err := catSync.Sync(ctx, cats)
	if err != nil {
		t.Fatalf("category sync: %v", err)
	}
	if res.Inserted != 2 {
		t.Fatalf("expected 2 category inserts, got %+v", res)
	}

	products := []domain.ExternalProduct{
		{ID: 1, Title: "Essence Mascara", Price: decimal.RequireFromString("9.99"), Description: "volumising", Category: "beauty"},
		{ID: 2, Title: "Vase", Price: decimal.RequireFromString("19.50"), Category: "home-decoration"},
	}
	prodSync := app.NewProductSync(repo, repo, repo, app.WithProductMapper(fixedMapper()))
	res, err = prodSync.Sync(ctx, products)
	if err != nil {
		t.Fatalf("product sync: %v", err)
	}
	if res.Inserted != 2 || res.EnrichmentFailed != 0 {
		t.Fatalf("unexpected first run result: %+v", res)
	}

	// second run with a renamed product updates in place
	products[0].Title = "Essence Mascara Lash Princess"
	res, err = prodSync.Sync(ctx, products)
	if err != nil {
		t.Fatalf("product sync (second run): %v", err)
	}
	if res.Updated != 2 || res.Inserted != 0 {
		t.Fatalf("unexpected second run result: %+v", res)
	}

	var counts struct {
		Products    int    `db:"products"`
		Mappings    int    `db:"mappings"`
		Localized   int    `db:"localized"`
		Categories  int    `db:"categories"`
		RenamedName string `db:"renamed"`
	}
	err = db.GetContext(ctx, &counts, `
SELECT
  (SELECT COUNT(*) FROM Product) AS products,
  (SELECT COUNT(*) FROM Product_Category_Mapping) AS mappings,
  (SELECT COUNT(*) FROM LocalizedProperty) AS localized,
  (SELECT COUNT(*) FROM Category) AS categories,
  (SELECT LocaleValue FROM LocalizedProperty lp JOIN Product p ON p.Id = lp.EntityId
     WHERE p.ApiId = '1' AND lp.LocaleKeyGroup = 'Product' AND lp.LocaleKey = 'Name' AND lp.LanguageId = 2) AS renamed
`)
	if err != nil {
		t.Fatalf("count rows: %v", err)
	}
	if counts.Products != 2 || counts.Categories != 2 || counts.Mappings != 2 || counts.Localized != 2 {
		t.Fatalf("unexpected row counts: %+v", counts)
	}
	if counts.RenamedName != "Essence Mascara Lash Princess" {
		t.Fatalf("localized name not updated: %q", counts.RenamedName)
	}

	id, err := repo.FindProductID(ctx, "1")
	if err != nil {
		t.Fatalf("FindProductID: %v", err)
	}
	var price decimal.Decimal
	if err := db.GetContext(ctx, &price, "SELECT Price FROM Product WHERE Id = ?", id); err != nil {
		t.Fatalf("read price: %v", err)
	}
	if !price.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("unexpected price %s", price)
	}

	if _, err := repo.FindProductID(ctx, "404"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := repo.UpdateCategory(ctx, domain.Category{Name: "x"}, 9999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing category, got %v", err)
	}
}
