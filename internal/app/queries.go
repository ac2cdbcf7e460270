package app

import (
	"context"
	"fmt"

	"nopsync/internal/domain"
)

// RunQueries answers read-only questions about past runs.
type RunQueries struct {
	recorder domain.RunRecorder
}

func NewRunQueries(r domain.RunRecorder) *RunQueries {
	return &RunQueries{recorder: r}
}

// LastRun returns the summary of the latest run for entity, or
// domain.ErrNotFound if none has been recorded.
func (q *RunQueries) LastRun(ctx context.Context, entity string) (domain.RunSummary, error) {
	if entity != domain.EntityProducts && entity != domain.EntityCategories {
		return domain.RunSummary{}, fmt.Errorf("entity %q: %w", entity, domain.ErrNotFound)
	}
	if q.recorder == nil {
		return domain.RunSummary{}, domain.ErrNotFound
	}
	return q.recorder.LastRun(ctx, entity)
}
