package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"nopsync/internal/domain"
)

// LocalizedWriter upserts LocalizedProperty rows by their natural key.
type LocalizedWriter struct {
	store domain.LocalizedStore
}

func NewLocalizedWriter(s domain.LocalizedStore) *LocalizedWriter {
	return &LocalizedWriter{store: s}
}

// Handle finds the row for a's natural key and sets its value, creating the
// row when there is none. It returns the row's id.
func (w *LocalizedWriter) Handle(ctx context.Context, a domain.LocalizedAttribute) (int64, error) {
	if err := checkLocalizedKey(a.LocalizedKey); err != nil {
		return 0, err
	}

	id, err := w.store.FindLocalizedID(ctx, a.LocalizedKey)
	switch {
	case err == nil:
		if err := w.store.UpdateLocalizedValue(ctx, id, a.Value); err != nil {
			return 0, fmt.Errorf("update localized %d: %w", id, err)
		}
		log.Debug().Int64("id", id).Str("group", a.Group).Str("key", a.Key).Msg("localized value updated")
		return id, nil

	case errors.Is(err, domain.ErrNotFound):
		id, err := w.store.InsertLocalized(ctx, a)
		if err != nil {
			return 0, fmt.Errorf("insert localized %s.%s/%d: %w", a.Group, a.Key, a.EntityID, err)
		}
		log.Debug().Int64("id", id).Str("group", a.Group).Str("key", a.Key).Msg("localized value inserted")
		return id, nil

	default:
		return 0, fmt.Errorf("find localized %s.%s/%d: %w", a.Group, a.Key, a.EntityID, err)
	}
}

func checkLocalizedKey(k domain.LocalizedKey) error {
	switch {
	case k.Group == "":
		return fmt.Errorf("empty locale key group: %w", domain.ErrInvalidID)
	case k.Key == "":
		return fmt.Errorf("empty locale key: %w", domain.ErrInvalidID)
	case k.EntityID <= 0:
		return fmt.Errorf("entity id %d: %w", k.EntityID, domain.ErrInvalidID)
	case k.LanguageID <= 0:
		return fmt.Errorf("language id %d: %w", k.LanguageID, domain.ErrInvalidID)
	}
	return nil
}
