package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrNilRecord = errors.New("record is nil")
	ErrInvalidID = errors.New("invalid identifier")
	ErrFetch     = errors.New("catalog fetch failed")
	ErrLocked    = errors.New("sync already running")
)

// BatchError is returned by a sync run that finished the whole batch but
// had at least one record fail to persist.
type BatchError struct {
	Entity string
	Result BatchResult
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s sync finished with %d errored record(s) (processed=%d skipped=%d rejected=%d)",
		e.Entity, e.Result.Errored, e.Result.Processed, e.Result.Skipped, e.Result.ValidationRejected)
}
