// Package memory keeps nopCommerce rows in process memory. It backs the
// dry-run command and the engine tests.
package memory

import (
	"context"
	"sync"

	"nopsync/internal/domain"
)

type assignmentKey struct{ productID, categoryID int64 }

type Store struct {
	mu sync.RWMutex

	nextProduct   int64
	nextCategory  int64
	nextLocalized int64

	products   map[int64]domain.Product
	productIdx map[string]int64 // ApiId -> Id

	categories  map[int64]domain.Category
	categoryIdx map[string]int64

	assignments []domain.CategoryAssignment
	assigned    map[assignmentKey]struct{}

	localized    map[int64]domain.LocalizedAttribute
	localizedIdx map[domain.LocalizedKey]int64
}

func New() *Store {
	return &Store{
		products:     map[int64]domain.Product{},
		productIdx:   map[string]int64{},
		categories:   map[int64]domain.Category{},
		categoryIdx:  map[string]int64{},
		assigned:     map[assignmentKey]struct{}{},
		localized:    map[int64]domain.LocalizedAttribute{},
		localizedIdx: map[domain.LocalizedKey]int64{},
	}
}

func derefID(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ---- products ----

func (s *Store) FindProductID(_ context.Context, externalID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.productIdx[externalID]; ok {
		return id, nil
	}
	return 0, domain.ErrNotFound
}

func (s *Store) InsertProduct(_ context.Context, p domain.Product) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextProduct++
	p.ID = s.nextProduct
	s.products[p.ID] = p
	if ext := derefID(p.ExternalID); ext != "" {
		s.productIdx[ext] = p.ID
	}
	return p.ID, nil
}

func (s *Store) UpdateProduct(_ context.Context, p domain.Product, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.ID = id
	p.CreatedOnUtc = cur.CreatedOnUtc
	s.products[id] = p
	if ext := derefID(p.ExternalID); ext != "" {
		s.productIdx[ext] = id
	}
	return nil
}

// Product returns a copy of the stored row.
func (s *Store) Product(id int64) (domain.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

func (s *Store) ProductCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

// ---- categories ----

func (s *Store) FindCategoryID(_ context.Context, externalID string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.categoryIdx[externalID]; ok {
		return id, nil
	}
	return 0, domain.ErrNotFound
}

func (s *Store) InsertCategory(_ context.Context, c domain.Category) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextCategory++
	c.ID = s.nextCategory
	s.categories[c.ID] = c
	if ext := derefID(c.ExternalID); ext != "" {
		s.categoryIdx[ext] = c.ID
	}
	return c.ID, nil
}

func (s *Store) UpdateCategory(_ context.Context, c domain.Category, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.categories[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.ID = id
	c.CreatedOnUtc = cur.CreatedOnUtc
	s.categories[id] = c
	if ext := derefID(c.ExternalID); ext != "" {
		s.categoryIdx[ext] = id
	}
	return nil
}

func (s *Store) Category(id int64) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.categories[id]
	return c, ok
}

func (s *Store) CategoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.categories)
}

// ---- assignments ----

func (s *Store) AssignmentExists(_ context.Context, productID, categoryID int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.assigned[assignmentKey{productID, categoryID}]
	return ok, nil
}

func (s *Store) InsertAssignment(_ context.Context, a domain.CategoryAssignment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := assignmentKey{a.ProductID, a.CategoryID}
	if _, ok := s.assigned[k]; ok {
		return nil
	}
	s.assigned[k] = struct{}{}
	s.assignments = append(s.assignments, a)
	return nil
}

func (s *Store) Assignments() []domain.CategoryAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.CategoryAssignment(nil), s.assignments...)
}

// ---- localized properties ----

func (s *Store) FindLocalizedID(_ context.Context, key domain.LocalizedKey) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if id, ok := s.localizedIdx[key]; ok {
		return id, nil
	}
	return 0, domain.ErrNotFound
}

func (s *Store) InsertLocalized(_ context.Context, a domain.LocalizedAttribute) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextLocalized++
	a.ID = s.nextLocalized
	s.localized[a.ID] = a
	s.localizedIdx[a.LocalizedKey] = a.ID
	return a.ID, nil
}

func (s *Store) UpdateLocalizedValue(_ context.Context, id int64, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.localized[id]
	if !ok {
		return domain.ErrNotFound
	}
	a.Value = value
	s.localized[id] = a
	return nil
}

func (s *Store) Localized() []domain.LocalizedAttribute {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.LocalizedAttribute, 0, len(s.localized))
	for i := int64(1); i <= s.nextLocalized; i++ {
		if a, ok := s.localized[i]; ok {
			out = append(out, a)
		}
	}
	return out
}

var (
	_ domain.ProductStore    = (*Store)(nil)
	_ domain.CategoryStore   = (*Store)(nil)
	_ domain.AssignmentStore = (*Store)(nil)
	_ domain.LocalizedStore  = (*Store)(nil)
)
