package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"nopsync/internal/domain"
)

func strp(s string) *string { return &s }

func TestStore_ProductLookupByExternalID(t *testing.T) {
	s := New()
	ctx := context.Background()

	_, err := s.FindProductID(ctx, "55")
	require.ErrorIs(t, err, domain.ErrNotFound)

	id, err := s.InsertProduct(ctx, domain.Product{ExternalID: strp("55"), Name: "A"})
	require.NoError(t, err)

	got, err := s.FindProductID(ctx, "55")
	require.NoError(t, err)
	require.Equal(t, id, got)

	require.NoError(t, s.UpdateProduct(ctx, domain.Product{ExternalID: strp("55"), Name: "B"}, id))
	p, ok := s.Product(id)
	require.True(t, ok)
	require.Equal(t, "B", p.Name)
	require.Equal(t, 1, s.ProductCount())

	require.ErrorIs(t, s.UpdateProduct(ctx, domain.Product{}, 999), domain.ErrNotFound)
}

func TestStore_AssignmentsDeduplicate(t *testing.T) {
	s := New()
	ctx := context.Background()
	a := domain.CategoryAssignment{ProductID: 1, CategoryID: 2}

	ok, err := s.AssignmentExists(ctx, 1, 2)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.InsertAssignment(ctx, a))
	require.NoError(t, s.InsertAssignment(ctx, a))
	require.Len(t, s.Assignments(), 1)

	ok, err = s.AssignmentExists(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestStore_LocalizedNaturalKey(t *testing.T) {
	s := New()
	ctx := context.Background()
	key := domain.LocalizedKey{Group: "Product", Key: "Name", EntityID: 10, LanguageID: 2}

	id, err := s.InsertLocalized(ctx, domain.LocalizedAttribute{LocalizedKey: key, Value: "X"})
	require.NoError(t, err)

	got, err := s.FindLocalizedID(ctx, key)
	require.NoError(t, err)
	require.Equal(t, id, got)

	other := key
	other.LanguageID = 1
	_, err = s.FindLocalizedID(ctx, other)
	require.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, s.UpdateLocalizedValue(ctx, id, "Y"))
	require.Equal(t, "Y", s.Localized()[0].Value)
}
