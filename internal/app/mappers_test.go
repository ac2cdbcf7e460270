package app_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nopsync/internal/domain"
)

func TestMapProduct_CopiesFeedFieldsAndDefaults(t *testing.T) {
	dto := domain.ExternalProduct{
		ID:          42,
		Title:       "Essence Mascara",
		Price:       decimal.RequireFromString("9.99"),
		Description: "volumising",
		Category:    "beauty",
	}
	p, err := fixedMapper().MapProduct(&dto)
	require.NoError(t, err)

	require.NotNil(t, p.ExternalID)
	assert.Equal(t, "42", *p.ExternalID)
	assert.Equal(t, "42", p.Sku)
	assert.Equal(t, "Essence Mascara", p.Name)
	assert.Equal(t, "volumising", p.FullDescription)
	assert.Equal(t, "beauty", p.CategoryName)
	assert.True(t, p.Price.Equal(decimal.RequireFromString("9.99")))

	assert.Equal(t, 5, p.ProductTypeID)
	assert.Equal(t, 1, p.ProductTemplateID)
	assert.Equal(t, 1, p.ManageInventoryMethodID)
	assert.Equal(t, 10, p.StockQuantity)
	assert.Equal(t, 1, p.OrderMinimumQuantity)
	assert.Equal(t, 100, p.OrderMaximumQuantity)
	assert.True(t, p.MaximumCustomerEnteredPrice.Equal(decimal.NewFromInt(1000)))
	assert.True(t, p.VisibleIndividually)
	assert.True(t, p.IsShipEnabled)
	assert.True(t, p.Published)
	assert.False(t, p.Deleted)
	assert.Equal(t, "", p.ShortDescription)
	assert.Nil(t, p.DownloadExpirationDays)
	assert.Equal(t, fixedNow, p.CreatedOnUtc)
	assert.Equal(t, fixedNow, p.UpdatedOnUtc)
}

func TestMapProduct_NonPositiveIDHasNoExternalID(t *testing.T) {
	p, err := fixedMapper().MapProduct(&domain.ExternalProduct{ID: 0, Title: "x"})
	require.NoError(t, err)
	assert.Nil(t, p.ExternalID)
	assert.Equal(t, "", p.Sku)
}

func TestMapCategory(t *testing.T) {
	c, err := fixedMapper().MapCategory(&domain.ExternalCategory{Name: "Home Decoration", Slug: "home-decoration"})
	require.NoError(t, err)

	require.NotNil(t, c.ExternalID)
	assert.Equal(t, "home-decoration", *c.ExternalID)
	assert.Equal(t, "Home Decoration", c.Name)
	assert.Equal(t, 1, c.CategoryTemplateID)
	assert.Equal(t, 10, c.PageSize)
	assert.True(t, c.Published)
	assert.False(t, c.PriceRangeFiltering)
	assert.True(t, c.PriceFrom.IsZero())
	assert.Equal(t, "", c.Description)
	assert.Equal(t, fixedNow, c.CreatedOnUtc)

	empty, err := fixedMapper().MapCategory(&domain.ExternalCategory{Name: "No slug"})
	require.NoError(t, err)
	assert.Nil(t, empty.ExternalID)
}

func TestMap_NilRecords(t *testing.T) {
	_, err := fixedMapper().MapProduct(nil)
	assert.ErrorIs(t, err, domain.ErrNilRecord)
	_, err = fixedMapper().MapCategory(nil)
	assert.ErrorIs(t, err, domain.ErrNilRecord)
}
