package app

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"nopsync/internal/domain"
)

/********** destination defaults (single source of truth) **********/

const (
	defaultProductTypeID       = 5 // simple product
	defaultProductTemplateID   = 1
	defaultVendorID            = 1
	defaultManageInventory     = 1 // track inventory
	defaultStockQuantity       = 10
	defaultMinStockQuantity    = 1
	defaultLowStockActivityID  = 1
	defaultNotifyBelowQuantity = 1
	defaultOrderMinimum        = 1
	defaultOrderMaximum        = 100
	defaultMaxCustomerPrice    = 1000

	defaultCategoryTemplateID = 1
	defaultCategoryPageSize   = 10
)

// ProductMapper and CategoryMapper turn feed records into destination rows.
type ProductMapper interface {
	MapProduct(dto *domain.ExternalProduct) (domain.Product, error)
}

type CategoryMapper interface {
	MapCategory(dto *domain.ExternalCategory) (domain.Category, error)
}

// Mapper fills every column the destination schema requires. It never
// touches storage.
type Mapper struct {
	Now func() time.Time
}

func NewMapper() *Mapper {
	return &Mapper{Now: func() time.Time { return time.Now().UTC() }}
}

/********** tiny helpers **********/

func ptrStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func externalIDFromInt(id int64) *string {
	if id <= 0 {
		return nil
	}
	return ptrStr(strconv.FormatInt(id, 10))
}

/********** product mapper **********/

func (m *Mapper) MapProduct(dto *domain.ExternalProduct) (domain.Product, error) {
	if dto == nil {
		return domain.Product{}, domain.ErrNilRecord
	}
	now := m.Now()
	extID := externalIDFromInt(dto.ID)

	return domain.Product{
		ExternalID:      extID,
		Sku:             deref(extID),
		Name:            dto.Title,
		Price:           dto.Price,
		FullDescription: dto.Description,
		CategoryName:    dto.Category,

		ProductTypeID:          defaultProductTypeID,
		ParentGroupedProductID: 0,
		VisibleIndividually:    true,
		ProductTemplateID:      defaultProductTemplateID,
		VendorID:               defaultVendorID,
		AllowCustomerReviews:   true,

		IsShipEnabled:            true,
		AdditionalShippingCharge: decimal.Zero,

		ManageInventoryMethodID:       defaultManageInventory,
		StockQuantity:                 defaultStockQuantity,
		DisplayStockAvailability:      true,
		DisplayStockQuantity:          true,
		MinStockQuantity:              defaultMinStockQuantity,
		LowStockActivityID:            defaultLowStockActivityID,
		NotifyAdminForQuantityBelow:   defaultNotifyBelowQuantity,
		AllowBackInStockSubscriptions: true,
		OrderMinimumQuantity:          defaultOrderMinimum,
		OrderMaximumQuantity:          defaultOrderMaximum,

		OldPrice:                    decimal.Zero,
		ProductCost:                 decimal.Zero,
		MinimumCustomerEnteredPrice: decimal.Zero,
		MaximumCustomerEnteredPrice: decimal.NewFromInt(defaultMaxCustomerPrice),
		BasepriceAmount:             decimal.Zero,
		BasepriceBaseAmount:         decimal.Zero,

		Weight: decimal.Zero,
		Length: decimal.Zero,
		Width:  decimal.Zero,
		Height: decimal.Zero,

		Published:    true,
		Deleted:      false,
		CreatedOnUtc: now,
		UpdatedOnUtc: now,
	}, nil
}

/********** category mapper **********/

func (m *Mapper) MapCategory(dto *domain.ExternalCategory) (domain.Category, error) {
	if dto == nil {
		return domain.Category{}, domain.ErrNilRecord
	}
	now := m.Now()

	return domain.Category{
		ExternalID: ptrStr(dto.Slug),
		Name:       dto.Name,

		CategoryTemplateID:  defaultCategoryTemplateID,
		PageSize:            defaultCategoryPageSize,
		Published:           true,
		Deleted:             false,
		PriceRangeFiltering: false,
		PriceFrom:           decimal.Zero,
		PriceTo:             decimal.Zero,
		CreatedOnUtc:        now,
		UpdatedOnUtc:        now,
	}, nil
}
