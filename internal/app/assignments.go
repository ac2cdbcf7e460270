package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"nopsync/internal/domain"
)

// AssignmentReconciler keeps exactly one Product_Category_Mapping row per
// (product, category) pair, however often the sync runs.
type AssignmentReconciler struct {
	store domain.AssignmentStore
}

func NewAssignmentReconciler(s domain.AssignmentStore) *AssignmentReconciler {
	return &AssignmentReconciler{store: s}
}

// EnsureAssignment links productID to the category whose ApiId is
// categoryRef. It reports whether a new row was written. A category that
// has not been synced yet is not an error.
func (r *AssignmentReconciler) EnsureAssignment(ctx context.Context, productID int64, categoryRef string) (bool, error) {
	if productID <= 0 {
		return false, fmt.Errorf("product id %d: %w", productID, domain.ErrInvalidID)
	}
	categoryRef = strings.TrimSpace(categoryRef)
	if categoryRef == "" {
		return false, fmt.Errorf("empty category reference: %w", domain.ErrInvalidID)
	}

	categoryID, err := r.store.FindCategoryID(ctx, categoryRef)
	if errors.Is(err, domain.ErrNotFound) {
		log.Debug().Int64("product_id", productID).Str("category", categoryRef).Msg("category not synced yet; mapping skipped")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find category %q: %w", categoryRef, err)
	}

	exists, err := r.store.AssignmentExists(ctx, productID, categoryID)
	if err != nil {
		return false, fmt.Errorf("check mapping %d/%d: %w", productID, categoryID, err)
	}
	if exists {
		return false, nil
	}

	if err := r.store.InsertAssignment(ctx, domain.CategoryAssignment{
		ProductID:         productID,
		CategoryID:        categoryID,
		IsFeaturedProduct: false,
		DisplayOrder:      0,
	}); err != nil {
		return false, fmt.Errorf("insert mapping %d/%d: %w", productID, categoryID, err)
	}
	log.Debug().Int64("product_id", productID).Int64("category_id", categoryID).Msg("category mapping created")
	return true, nil
}
