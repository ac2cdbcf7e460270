package app_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"nopsync/internal/app"
	"nopsync/internal/domain"
)

// ---- fakes ----

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) FindProductID(ctx context.Context, externalID string) (int64, error) {
	args := m.Called(ctx, externalID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductStore) InsertProduct(ctx context.Context, p domain.Product) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductStore) UpdateProduct(ctx context.Context, p domain.Product, id int64) error {
	return m.Called(ctx, p, id).Error(0)
}

// brokenAssignments fails every category lookup.
type brokenAssignments struct{ err error }

func (b brokenAssignments) FindCategoryID(context.Context, string) (int64, error) { return 0, b.err }
func (b brokenAssignments) AssignmentExists(context.Context, int64, int64) (bool, error) {
	return false, b.err
}
func (b brokenAssignments) InsertAssignment(context.Context, domain.CategoryAssignment) error {
	return b.err
}

// nilIDMapper maps every product without an external id.
type nilIDMapper struct{}

func (nilIDMapper) MapProduct(dto *domain.ExternalProduct) (domain.Product, error) {
	return domain.Product{Name: dto.Title}, nil
}

func (nilIDMapper) MapCategory(dto *domain.ExternalCategory) (domain.Category, error) {
	return domain.Category{Name: dto.Name}, nil
}

type fakeFetcher struct {
	products   []domain.ExternalProduct
	categories []domain.ExternalCategory
	err        error
	calls      int
}

func (f *fakeFetcher) FetchProducts(context.Context) ([]domain.ExternalProduct, error) {
	f.calls++
	return f.products, f.err
}

func (f *fakeFetcher) FetchCategories(context.Context) ([]domain.ExternalCategory, error) {
	f.calls++
	return f.categories, f.err
}

type fakeLock struct {
	held     map[string]bool
	released []string
}

func (l *fakeLock) Acquire(_ context.Context, name string, _ time.Duration) (func(context.Context) error, error) {
	if l.held[name] {
		return nil, domain.ErrLocked
	}
	l.held[name] = true
	return func(context.Context) error {
		l.held[name] = false
		l.released = append(l.released, name)
		return nil
	}, nil
}

type fakeRecorder struct {
	runs map[string]domain.RunSummary
}

func (r *fakeRecorder) SaveRun(_ context.Context, s domain.RunSummary) error {
	r.runs[s.Entity] = s
	return nil
}

func (r *fakeRecorder) LastRun(_ context.Context, entity string) (domain.RunSummary, error) {
	s, ok := r.runs[entity]
	if !ok {
		return domain.RunSummary{}, domain.ErrNotFound
	}
	return s, nil
}

// ---- helpers ----

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func fixedMapper() *app.Mapper {
	return &app.Mapper{Now: func() time.Time { return fixedNow }}
}

func product(id int64, title, category string) domain.ExternalProduct {
	return domain.ExternalProduct{
		ID:          id,
		Title:       title,
		Price:       decimal.RequireFromString("9.99"),
		Description: "desc",
		Category:    category,
	}
}

func hasExternalID(id string) any {
	return mock.MatchedBy(func(p domain.Product) bool {
		return p.ExternalID != nil && *p.ExternalID == id
	})
}

var anyArg = mock.Anything
