package domain

import (
	"context"
	"time"
)

// Fetcher pulls the full feeds from the catalog API.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]ExternalProduct, error)
	FetchCategories(ctx context.Context) ([]ExternalCategory, error)
}

// Lookups return ErrNotFound when no row matches.

type ProductStore interface {
	FindProductID(ctx context.Context, externalID string) (int64, error)
	InsertProduct(ctx context.Context, p Product) (int64, error)
	UpdateProduct(ctx context.Context, p Product, id int64) error
}

type AssignmentStore interface {
	FindCategoryID(ctx context.Context, externalID string) (int64, error)
	AssignmentExists(ctx context.Context, productID, categoryID int64) (bool, error)
	InsertAssignment(ctx context.Context, a CategoryAssignment) error
}

type CategoryStore interface {
	FindCategoryID(ctx context.Context, externalID string) (int64, error)
	InsertCategory(ctx context.Context, c Category) (int64, error)
	UpdateCategory(ctx context.Context, c Category, id int64) error
}

type LocalizedStore interface {
	FindLocalizedID(ctx context.Context, key LocalizedKey) (int64, error)
	InsertLocalized(ctx context.Context, a LocalizedAttribute) (int64, error)
	UpdateLocalizedValue(ctx context.Context, id int64, value string) error
}

// RunLock keeps two runs of the same command from overlapping.
type RunLock interface {
	Acquire(ctx context.Context, name string, ttl time.Duration) (release func(context.Context) error, err error)
}

type RunRecorder interface {
	SaveRun(ctx context.Context, s RunSummary) error
	LastRun(ctx context.Context, entity string) (RunSummary, error)
}
