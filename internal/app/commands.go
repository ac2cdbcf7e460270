package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"nopsync/internal/domain"
)

// Runner executes one CLI command end to end: lock, fetch, sync, record.
type Runner struct {
	fetcher    domain.Fetcher
	products   *ProductSync
	categories *CategorySync
	lock       domain.RunLock     // optional
	recorder   domain.RunRecorder // optional
	lockTTL    time.Duration
	now        func() time.Time
}

func NewRunner(f domain.Fetcher, p *ProductSync, c *CategorySync, lock domain.RunLock, rec domain.RunRecorder, lockTTL time.Duration) *Runner {
	return &Runner{
		fetcher:    f,
		products:   p,
		categories: c,
		lock:       lock,
		recorder:   rec,
		lockTTL:    lockTTL,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Run syncs one entity ("products" or "categories"). Fetch failures abort
// before any record is touched.
func (r *Runner) Run(ctx context.Context, entity string) (domain.BatchResult, error) {
	if entity != domain.EntityProducts && entity != domain.EntityCategories {
		return domain.BatchResult{}, fmt.Errorf("unknown entity %q", entity)
	}

	if r.lock != nil {
		release, err := r.lock.Acquire(ctx, entity, r.lockTTL)
		if err != nil {
			return domain.BatchResult{}, err
		}
		defer func() {
			// the run's ctx may already be done; release on a fresh one
			rctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := release(rctx); err != nil {
				log.Warn().Err(err).Str("entity", entity).Msg("lock release failed")
			}
		}()
	}

	started := r.now()
	res, err := r.run(ctx, entity)
	r.record(ctx, entity, started, res, err)
	return res, err
}

func (r *Runner) run(ctx context.Context, entity string) (domain.BatchResult, error) {
	switch entity {
	case domain.EntityCategories:
		dtos, err := r.fetcher.FetchCategories(ctx)
		if err != nil {
			return domain.BatchResult{}, err
		}
		log.Info().Int("count", len(dtos)).Msg("categories fetched")
		return r.categories.Sync(ctx, dtos)

	default:
		dtos, err := r.fetcher.FetchProducts(ctx)
		if err != nil {
			return domain.BatchResult{}, err
		}
		log.Info().Int("count", len(dtos)).Msg("products fetched")
		return r.products.Sync(ctx, dtos)
	}
}

// record is best-effort: a recorder outage must not change the run's result.
func (r *Runner) record(ctx context.Context, entity string, started time.Time, res domain.BatchResult, runErr error) {
	if r.recorder == nil {
		return
	}
	s := domain.RunSummary{
		Entity:     entity,
		Status:     domain.RunStatusOK,
		Result:     res,
		StartedAt:  started,
		FinishedAt: r.now(),
	}
	if runErr != nil {
		s.Status = domain.RunStatusFailed
		s.Error = runErr.Error()
	}
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
	}
	if err := r.recorder.SaveRun(ctx, s); err != nil {
		log.Warn().Err(err).Str("entity", entity).Msg("saving run summary failed")
	}
}
