package mysql

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// externalIDTables lists the tables that carry the ApiId correlation column.
var externalIDTables = []string{"Product", "Category"}

// EnsureExternalIDColumns adds ApiId VARCHAR(255) NULL with a unique
// constraint to every table in externalIDTables that lacks it. Safe to run
// on every start-up.
func (r *Repo) EnsureExternalIDColumns(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, table := range externalIDTables {
		table := table
		g.Go(func() error { return r.ensureExternalIDColumn(ctx, table) })
	}
	return g.Wait()
}

func (r *Repo) ensureExternalIDColumn(ctx context.Context, table string) error {
	var n int
	if err := r.db.GetContext(ctx, &n, columnExistsSQL, table); err != nil {
		return fmt.Errorf("check %s.ApiId: %w", table, err)
	}
	if n > 0 {
		log.Debug().Str("table", table).Msg("ApiId column present")
		return nil
	}
	// table comes from externalIDTables, never from input
	ddl := fmt.Sprintf(
		"ALTER TABLE %s ADD COLUMN ApiId VARCHAR(255) NULL, ADD CONSTRAINT UQ_%s_ApiId UNIQUE (ApiId)",
		table, table)
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("add %s.ApiId: %w", table, err)
	}
	log.Info().Str("table", table).Msg("added ApiId column")
	return nil
}
