package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nopsync/internal/app"
	"nopsync/internal/domain"
	"nopsync/internal/storage/memory"
)

func TestProductSync_RejectsInvalidWithoutWriting(t *testing.T) {
	store := &mockProductStore{}
	store.On("FindProductID", mock.Anything, mock.Anything).Return(int64(0), domain.ErrNotFound)
	store.On("InsertProduct", mock.Anything, mock.Anything).Return(int64(1), nil)

	mem := memory.New()
	s := app.NewProductSync(store, mem, mem, app.WithProductMapper(fixedMapper()))

	res, err := s.Sync(context.Background(), []domain.ExternalProduct{
		product(1, "Mascara", "beauty"),
		product(2, "", "beauty"),
		product(3, "Lipstick", "beauty"),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Processed)
	assert.Equal(t, 1, res.ValidationRejected)
	assert.Equal(t, 0, res.Errored)
	store.AssertNumberOfCalls(t, "InsertProduct", 2)
	store.AssertNotCalled(t, "FindProductID", mock.Anything, "2")
	store.AssertNotCalled(t, "UpdateProduct", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductSync_UpdatesExistingByExternalID(t *testing.T) {
	store := &mockProductStore{}
	store.On("FindProductID", mock.Anything, "55").Return(int64(7), nil)
	store.On("UpdateProduct", mock.Anything, hasExternalID("55"), int64(7)).Return(nil)

	mem := memory.New()
	s := app.NewProductSync(store, mem, mem)

	res, err := s.Sync(context.Background(), []domain.ExternalProduct{product(55, "Mascara", "beauty")})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Inserted)
	store.AssertCalled(t, "UpdateProduct", mock.Anything, hasExternalID("55"), int64(7))
	store.AssertNotCalled(t, "InsertProduct", mock.Anything, mock.Anything)
}

func TestProductSync_PersistenceFailureDoesNotStopBatch(t *testing.T) {
	store := &mockProductStore{}
	store.On("FindProductID", mock.Anything, mock.Anything).Return(int64(0), domain.ErrNotFound)
	store.On("InsertProduct", mock.Anything, hasExternalID("1")).Return(int64(11), nil)
	store.On("InsertProduct", mock.Anything, hasExternalID("2")).Return(int64(0), errors.New("duplicate key"))
	store.On("InsertProduct", mock.Anything, hasExternalID("3")).Return(int64(13), nil)

	mem := memory.New()
	s := app.NewProductSync(store, mem, mem)

	res, err := s.Sync(context.Background(), []domain.ExternalProduct{
		product(1, "A", "beauty"),
		product(2, "B", "beauty"),
		product(3, "C", "beauty"),
	})

	var be *domain.BatchError
	require.True(t, errors.As(err, &be), "expected *BatchError, got %v", err)
	assert.Equal(t, domain.EntityProducts, be.Entity)
	assert.Equal(t, 1, be.Result.Errored)
	assert.Equal(t, 1, res.Errored)
	assert.Equal(t, 2, res.Processed)
	store.AssertCalled(t, "InsertProduct", mock.Anything, hasExternalID("3"))

	// localized names only for the two stored products
	ids := map[int64]bool{}
	for _, a := range mem.Localized() {
		ids[a.EntityID] = true
	}
	assert.Equal(t, map[int64]bool{11: true, 13: true}, ids)
}

func TestProductSync_LookupFailureCountsAsErrored(t *testing.T) {
	store := &mockProductStore{}
	store.On("FindProductID", mock.Anything, "1").Return(int64(0), errors.New("connection reset"))

	mem := memory.New()
	res, err := app.NewProductSync(store, mem, mem).Sync(context.Background(), []domain.ExternalProduct{product(1, "A", "beauty")})

	require.Error(t, err)
	assert.Equal(t, 1, res.Errored)
	store.AssertNotCalled(t, "InsertProduct", mock.Anything, mock.Anything)
}

func TestProductSync_Idempotent(t *testing.T) {
	mem := memory.New()
	ctx := context.Background()
	_, err := mem.InsertCategory(ctx, domain.Category{ExternalID: strPtr("beauty"), Name: "Beauty"})
	require.NoError(t, err)

	s := app.NewProductSync(mem, mem, mem, app.WithProductMapper(fixedMapper()))
	input := []domain.ExternalProduct{
		product(1, "Mascara", "beauty"),
		product(2, "Lipstick", "beauty"),
		product(3, "Vase", "home-decoration"), // category not synced
	}

	first, err := s.Sync(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Inserted)

	products, assignments, localized := mem.ProductCount(), mem.Assignments(), mem.Localized()

	second, err := s.Sync(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 3, second.Updated)
	assert.Equal(t, 0, second.EnrichmentFailed)

	assert.Equal(t, products, mem.ProductCount())
	assert.Equal(t, assignments, mem.Assignments())
	assert.Equal(t, localized, mem.Localized())
	assert.Len(t, assignments, 2)
	assert.Len(t, localized, 3)
}

func TestProductSync_NilExternalIDIsSkipped(t *testing.T) {
	store := &mockProductStore{}
	mem := memory.New()
	s := app.NewProductSync(store, mem, mem, app.WithProductMapper(nilIDMapper{}))

	res, err := s.Sync(context.Background(), []domain.ExternalProduct{product(1, "A", "beauty")})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 0, res.Processed)
	store.AssertNotCalled(t, "FindProductID", mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "InsertProduct", mock.Anything, mock.Anything)
}

func TestProductSync_EnrichmentFailureIsSwallowed(t *testing.T) {
	mem := memory.New()
	s := app.NewProductSync(mem, brokenAssignments{err: errors.New("mapping table locked")}, mem)

	res, err := s.Sync(context.Background(), []domain.ExternalProduct{product(1, "A", "beauty")})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	assert.Equal(t, 1, res.Inserted)
	assert.Equal(t, 1, res.EnrichmentFailed)
	assert.Equal(t, 0, res.Errored)
	assert.Equal(t, 1, mem.ProductCount())
	assert.Len(t, mem.Localized(), 1, "localized write still runs after a mapping failure")
}

func TestProductSync_LocalizedNameUsesConfiguredLanguage(t *testing.T) {
	mem := memory.New()
	s := app.NewProductSync(mem, mem, mem, app.WithLanguageID(5))

	_, err := s.Sync(context.Background(), []domain.ExternalProduct{product(9, "Mascara", "beauty")})
	require.NoError(t, err)

	loc := mem.Localized()
	require.Len(t, loc, 1)
	assert.Equal(t, domain.LocaleGroupProduct, loc[0].Group)
	assert.Equal(t, domain.LocaleKeyName, loc[0].Key)
	assert.Equal(t, int64(5), loc[0].LanguageID)
	assert.Equal(t, "Mascara", loc[0].Value)
}

func TestProductSync_StopsOnCancelledContext(t *testing.T) {
	store := &mockProductStore{}
	mem := memory.New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := app.NewProductSync(store, mem, mem).Sync(ctx, []domain.ExternalProduct{
		product(1, "A", "beauty"),
		product(2, "B", "beauty"),
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, 0, res.Attempted())
	store.AssertNotCalled(t, "FindProductID", mock.Anything, mock.Anything)
}

func TestProductSync_EmptyBatch(t *testing.T) {
	mem := memory.New()
	res, err := app.NewProductSync(mem, mem, mem).Sync(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchResult{}, res)
}

func strPtr(s string) *string { return &s }
