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

// CategorySync upserts feed categories into the Category table, keyed by slug.
type CategorySync struct {
	store domain.CategoryStore
	opts  options
}

func NewCategorySync(store domain.CategoryStore, opts ...Option) *CategorySync {
	return &CategorySync{store: store, opts: buildOptions(opts)}
}

func (s *CategorySync) Sync(ctx context.Context, dtos []domain.ExternalCategory) (domain.BatchResult, error) {
	start := time.Now()
	res := domain.BatchResult{Total: len(dtos)}

	for i := range dtos {
		if err := ctx.Err(); err != nil {
			logSummary(domain.EntityCategories, res, time.Since(start))
			return res, fmt.Errorf("categories sync stopped after %d of %d records: %w", i, len(dtos), err)
		}

		o := s.syncOne(ctx, &dtos[i])
		res = tally(res, o)
		observability.ObserveRecord(domain.EntityCategories, o.String())
		logProgress(domain.EntityCategories, s.opts.progressEvery, i+1, len(dtos))
	}

	logSummary(domain.EntityCategories, res, time.Since(start))
	if res.Errored > 0 {
		return res, &domain.BatchError{Entity: domain.EntityCategories, Result: res}
	}
	return res, nil
}

func (s *CategorySync) syncOne(ctx context.Context, dto *domain.ExternalCategory) outcome {
	if errs := s.opts.validator.ValidateCategory(dto); len(errs) > 0 {
		log.Warn().Str("slug", dto.Slug).Str("name", dto.Name).Str("errors", joinFieldErrors(errs)).Msg("category rejected")
		return outcomeRejected
	}

	c, err := s.opts.categoryMapper.MapCategory(dto)
	if err != nil {
		log.Error().Err(err).Str("slug", dto.Slug).Msg("category mapping failed")
		return outcomeErrored
	}
	if c.ExternalID == nil || *c.ExternalID == "" {
		log.Info().Str("name", c.Name).Msg("category skipped: no api id")
		return outcomeSkipped
	}

	id, err := s.store.FindCategoryID(ctx, *c.ExternalID)
	switch {
	case err == nil:
		if err := s.store.UpdateCategory(ctx, c, id); err != nil {
			log.Error().Err(err).Str("api_id", *c.ExternalID).Int64("id", id).Msg("category update failed")
			return outcomeErrored
		}
		log.Debug().Str("api_id", *c.ExternalID).Int64("id", id).Msg("category updated")
		return outcomeUpdated

	case errors.Is(err, domain.ErrNotFound):
		id, err := s.store.InsertCategory(ctx, c)
		if err != nil {
			log.Error().Err(err).Str("api_id", *c.ExternalID).Msg("category insert failed")
			return outcomeErrored
		}
		log.Debug().Str("api_id", *c.ExternalID).Int64("id", id).Msg("category inserted")
		return outcomeInserted

	default:
		log.Error().Err(err).Str("api_id", *c.ExternalID).Msg("category lookup failed")
		return outcomeErrored
	}
}
