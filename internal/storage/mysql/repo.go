package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"nopsync/internal/domain"
)

type Repo struct{ db *sqlx.DB }

func New(db *sqlx.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Ping(ctx context.Context) error { return r.db.PingContext(ctx) }

// findID runs a single-column id lookup and maps "no rows" to domain.ErrNotFound.
func (r *Repo) findID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *Repo) insertNamed(ctx context.Context, query string, arg any) (int64, error) {
	res, err := r.db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *Repo) updateNamed(ctx context.Context, query string, arg any, table string, id int64) error {
	res, err := r.db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return err
	}
	// RowsAffected is 0 for both "missing" and "unchanged" under the default
	// driver flags, so only a hard miss is worth checking for.
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		var exists bool
		q := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s WHERE Id = ?)", table)
		if err := r.db.GetContext(ctx, &exists, q, id); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%s %d: %w", table, id, domain.ErrNotFound)
		}
	}
	return nil
}

// ---- products ----

func (r *Repo) FindProductID(ctx context.Context, externalID string) (int64, error) {
	return r.findID(ctx, findProductIDSQL, externalID)
}

func (r *Repo) InsertProduct(ctx context.Context, p domain.Product) (int64, error) {
	return r.insertNamed(ctx, insertProductSQL, p)
}

func (r *Repo) UpdateProduct(ctx context.Context, p domain.Product, id int64) error {
	p.ID = id
	return r.updateNamed(ctx, updateProductSQL, p, "Product", id)
}

// ---- categories ----

func (r *Repo) FindCategoryID(ctx context.Context, externalID string) (int64, error) {
	return r.findID(ctx, findCategoryIDSQL, externalID)
}

func (r *Repo) InsertCategory(ctx context.Context, c domain.Category) (int64, error) {
	return r.insertNamed(ctx, insertCategorySQL, c)
}

func (r *Repo) UpdateCategory(ctx context.Context, c domain.Category, id int64) error {
	c.ID = id
	return r.updateNamed(ctx, updateCategorySQL, c, "Category", id)
}

// ---- assignments ----

func (r *Repo) AssignmentExists(ctx context.Context, productID, categoryID int64) (bool, error) {
	var ok bool
	if err := r.db.GetContext(ctx, &ok, assignmentExistsSQL, productID, categoryID); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *Repo) InsertAssignment(ctx context.Context, a domain.CategoryAssignment) error {
	_, err := r.db.NamedExecContext(ctx, insertAssignmentSQL, a)
	return err
}

// ---- localized properties ----

func (r *Repo) FindLocalizedID(ctx context.Context, key domain.LocalizedKey) (int64, error) {
	q, args, err := r.db.BindNamed(findLocalizedIDSQL, key)
	if err != nil {
		return 0, err
	}
	return r.findID(ctx, q, args...)
}

func (r *Repo) InsertLocalized(ctx context.Context, a domain.LocalizedAttribute) (int64, error) {
	return r.insertNamed(ctx, insertLocalizedSQL, a)
}

func (r *Repo) UpdateLocalizedValue(ctx context.Context, id int64, value string) error {
	_, err := r.db.ExecContext(ctx, updateLocalizedValueSQL, value, id)
	return err
}

var (
	_ domain.ProductStore    = (*Repo)(nil)
	_ domain.CategoryStore   = (*Repo)(nil)
	_ domain.AssignmentStore = (*Repo)(nil)
	_ domain.LocalizedStore  = (*Repo)(nil)
)
