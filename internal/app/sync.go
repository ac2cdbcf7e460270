package app

import (
	"time"

	"github.com/rs/zerolog/log"

	"nopsync/internal/adapters/observability"
	"nopsync/internal/domain"
)

const (
	DefaultLanguageID    int64 = 2
	DefaultProgressEvery       = 25
)

// outcome is where a single record ended up.
type outcome int

const (
	outcomeInserted outcome = iota
	outcomeUpdated
	outcomeSkipped
	outcomeRejected
	outcomeErrored
)

func (o outcome) String() string {
	switch o {
	case outcomeInserted:
		return "inserted"
	case outcomeUpdated:
		return "updated"
	case outcomeSkipped:
		return "skipped"
	case outcomeRejected:
		return "rejected"
	default:
		return "errored"
	}
}

// tally folds one outcome into the run's counters.
func tally(res domain.BatchResult, o outcome) domain.BatchResult {
	switch o {
	case outcomeInserted:
		res.Processed++
		res.Inserted++
	case outcomeUpdated:
		res.Processed++
		res.Updated++
	case outcomeSkipped:
		res.Skipped++
	case outcomeRejected:
		res.ValidationRejected++
	case outcomeErrored:
		res.Errored++
	}
	return res
}

type options struct {
	validator      *Validator
	productMapper  ProductMapper
	categoryMapper CategoryMapper
	languageID     int64
	progressEvery  int
}

type Option func(*options)

func WithValidator(v *Validator) Option { return func(o *options) { o.validator = v } }

func WithProductMapper(m ProductMapper) Option { return func(o *options) { o.productMapper = m } }

func WithCategoryMapper(m CategoryMapper) Option { return func(o *options) { o.categoryMapper = m } }

// WithLanguageID sets the language of the localized product name.
func WithLanguageID(id int64) Option { return func(o *options) { o.languageID = id } }

// WithProgressEvery logs progress after every n records; n <= 0 disables it.
func WithProgressEvery(n int) Option { return func(o *options) { o.progressEvery = n } }

func buildOptions(opts []Option) options {
	mapper := NewMapper()
	o := options{
		productMapper:  mapper,
		categoryMapper: mapper,
		languageID:     DefaultLanguageID,
		progressEvery:  DefaultProgressEvery,
	}
	for _, fn := range opts {
		fn(&o)
	}
	if o.validator == nil {
		o.validator = NewValidator()
	}
	return o
}

func logProgress(entity string, every, done, total int) {
	if every <= 0 || done%every != 0 || done == total {
		return
	}
	log.Info().Str("entity", entity).Int("done", done).Int("total", total).Msg("sync progress")
}

func logSummary(entity string, res domain.BatchResult, took time.Duration) {
	observability.ObserveSync(entity, took)
	ev := log.Info()
	if res.Errored > 0 {
		ev = log.Error()
	}
	ev.Str("entity", entity).
		Int("total", res.Total).
		Int("processed", res.Processed).
		Int("inserted", res.Inserted).
		Int("updated", res.Updated).
		Int("skipped", res.Skipped).
		Int("validation_rejected", res.ValidationRejected).
		Int("errored", res.Errored).
		Int("enrichment_failed", res.EnrichmentFailed).
		Dur("took", took).
		Msg("sync finished")
}
