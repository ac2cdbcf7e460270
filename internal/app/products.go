package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nopsync/internal/adapters/observability"
	"nopsync/internal/domain"
)

// ProductSync upserts feed products into the Product table, then links each
// one to its category and writes its localized name.
type ProductSync struct {
	store       domain.ProductStore
	assignments *AssignmentReconciler
	localized   *LocalizedWriter
	opts        options
}

func NewProductSync(store domain.ProductStore, assignments domain.AssignmentStore, localized domain.LocalizedStore, opts ...Option) *ProductSync {
	return &ProductSync{
		store:       store,
		assignments: NewAssignmentReconciler(assignments),
		localized:   NewLocalizedWriter(localized),
		opts:        buildOptions(opts),
	}
}

// Sync processes dtos in order. A record that fails does not stop the
// batch; if any did, a *domain.BatchError is returned after the last one.
func (s *ProductSync) Sync(ctx context.Context, dtos []domain.ExternalProduct) (domain.BatchResult, error) {
	start := time.Now()
	res := domain.BatchResult{Total: len(dtos)}

	for i := range dtos {
		if err := ctx.Err(); err != nil {
			logSummary(domain.EntityProducts, res, time.Since(start))
			return res, fmt.Errorf("products sync stopped after %d of %d records: %w", i, len(dtos), err)
		}

		o, enriched := s.syncOne(ctx, &dtos[i])
		res = tally(res, o)
		if !enriched {
			res.EnrichmentFailed++
		}
		observability.ObserveRecord(domain.EntityProducts, o.String())
		logProgress(domain.EntityProducts, s.opts.progressEvery, i+1, len(dtos))
	}

	logSummary(domain.EntityProducts, res, time.Since(start))
	if res.Errored > 0 {
		return res, &domain.BatchError{Entity: domain.EntityProducts, Result: res}
	}
	return res, nil
}

// syncOne reports the record's outcome and whether its enrichment steps
// (category mapping, localized name) all succeeded.
func (s *ProductSync) syncOne(ctx context.Context, dto *domain.ExternalProduct) (outcome, bool) {
	if errs := s.opts.validator.ValidateProduct(dto); len(errs) > 0 {
		log.Warn().Int64("api_id", dto.ID).Str("title", dto.Title).Str("errors", joinFieldErrors(errs)).Msg("product rejected")
		return outcomeRejected, true
	}

	p, err := s.opts.productMapper.MapProduct(dto)
	if err != nil {
		log.Error().Err(err).Int64("api_id", dto.ID).Msg("product mapping failed")
		return outcomeErrored, true
	}
	if p.ExternalID == nil || *p.ExternalID == "" {
		log.Info().Str("name", p.Name).Msg("product skipped: no api id")
		return outcomeSkipped, true
	}

	id, o, err := s.upsert(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("api_id", *p.ExternalID).Msg("product upsert failed")
		return outcomeErrored, true
	}
	log.Debug().Str("api_id", *p.ExternalID).Int64("id", id).Str("result", o.String()).Msg("product synced")

	return o, s.enrich(ctx, p, id)
}

func (s *ProductSync) upsert(ctx context.Context, p domain.Product) (int64, outcome, error) {
	id, err := s.store.FindProductID(ctx, *p.ExternalID)
	switch {
	case err == nil:
		if err := s.store.UpdateProduct(ctx, p, id); err != nil {
			return 0, outcomeErrored, fmt.Errorf("update product %d: %w", id, err)
		}
		return id, outcomeUpdated, nil

	case errors.Is(err, domain.ErrNotFound):
		id, err := s.store.InsertProduct(ctx, p)
		if err != nil {
			return 0, outcomeErrored, fmt.Errorf("insert product: %w", err)
		}
		return id, outcomeInserted, nil

	default:
		return 0, outcomeErrored, fmt.Errorf("find product: %w", err)
	}
}

// enrich runs the side writes. The product row is already stored, so
// failures here are logged and the record still counts as processed.
func (s *ProductSync) enrich(ctx context.Context, p domain.Product, id int64) bool {
	ok := true
	if _, err := s.assignments.EnsureAssignment(ctx, id, p.CategoryName); err != nil {
		log.Warn().Err(err).Int64("id", id).Str("category", p.CategoryName).Msg("category mapping failed")
		ok = false
	}

	if _, err := s.localized.Handle(ctx, domain.LocalizedAttribute{
		LocalizedKey: domain.LocalizedKey{
			Group:      domain.LocaleGroupProduct,
			Key:        domain.LocaleKeyName,
			EntityID:   id,
			LanguageID: s.opts.languageID,
		},
		Value: p.Name,
	}); err != nil {
		log.Warn().Err(err).Int64("id", id).Msg("localized name write failed")
		ok = false
	}
	return ok
}
