package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExternalProduct is one element of the catalog API's products feed.
type ExternalProduct struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
}

// Product mirrors the nopCommerce Product table. Only a handful of columns
// come from the catalog feed; the rest exist because the schema requires them.
type Product struct {
	ID         int64   `db:"Id"`
	ExternalID *string `db:"ApiId"` // unique when non-null

	// CategoryName is the feed's category reference, used to find the
	// Category row by ApiId. It is not a column.
	CategoryName string `db:"-"`

	Name                    string `db:"Name"`
	MetaKeywords            string `db:"MetaKeywords"`
	MetaTitle               string `db:"MetaTitle"`
	Sku                     string `db:"Sku"`
	ManufacturerPartNumber  string `db:"ManufacturerPartNumber"`
	Gtin                    string `db:"Gtin"`
	RequiredProductIds      string `db:"RequiredProductIds"`
	AllowedQuantities       string `db:"AllowedQuantities"`
	ProductTypeID           int    `db:"ProductTypeId"`
	ParentGroupedProductID  int    `db:"ParentGroupedProductId"`
	VisibleIndividually     bool   `db:"VisibleIndividually"`
	ShortDescription        string `db:"ShortDescription"`
	FullDescription         string `db:"FullDescription"`
	AdminComment            string `db:"AdminComment"`
	ProductTemplateID       int    `db:"ProductTemplateId"`
	VendorID                int    `db:"VendorId"`
	ShowOnHomepage          bool   `db:"ShowOnHomepage"`
	MetaDescription         string `db:"MetaDescription"`
	AllowCustomerReviews    bool   `db:"AllowCustomerReviews"`
	ApprovedRatingSum       int    `db:"ApprovedRatingSum"`
	NotApprovedRatingSum    int    `db:"NotApprovedRatingSum"`
	ApprovedTotalReviews    int    `db:"ApprovedTotalReviews"`
	NotApprovedTotalReviews int    `db:"NotApprovedTotalReviews"`
	SubjectToACL            bool   `db:"SubjectToAcl"`
	LimitedToStores         bool   `db:"LimitedToStores"`

	IsGiftCard               bool                `db:"IsGiftCard"`
	GiftCardTypeID           int                 `db:"GiftCardTypeId"`
	OverriddenGiftCardAmount decimal.NullDecimal `db:"OverriddenGiftCardAmount"`

	RequireOtherProducts             bool `db:"RequireOtherProducts"`
	AutomaticallyAddRequiredProducts bool `db:"AutomaticallyAddRequiredProducts"`

	IsDownload               bool   `db:"IsDownload"`
	DownloadID               int    `db:"DownloadId"`
	UnlimitedDownloads       bool   `db:"UnlimitedDownloads"`
	MaxNumberOfDownloads     int    `db:"MaxNumberOfDownloads"`
	DownloadExpirationDays   *int   `db:"DownloadExpirationDays"`
	DownloadActivationTypeID int    `db:"DownloadActivationTypeId"`
	HasSampleDownload        bool   `db:"HasSampleDownload"`
	SampleDownloadID         int    `db:"SampleDownloadId"`
	HasUserAgreement         bool   `db:"HasUserAgreement"`
	UserAgreementText        string `db:"UserAgreementText"`

	IsRecurring            bool `db:"IsRecurring"`
	RecurringCycleLength   int  `db:"RecurringCycleLength"`
	RecurringCyclePeriodID int  `db:"RecurringCyclePeriodId"`
	RecurringTotalCycles   int  `db:"RecurringTotalCycles"`
	IsRental               bool `db:"IsRental"`
	RentalPriceLength      int  `db:"RentalPriceLength"`
	RentalPricePeriodID    int  `db:"RentalPricePeriodId"`

	IsShipEnabled            bool            `db:"IsShipEnabled"`
	IsFreeShipping           bool            `db:"IsFreeShipping"`
	ShipSeparately           bool            `db:"ShipSeparately"`
	AdditionalShippingCharge decimal.Decimal `db:"AdditionalShippingCharge"`
	DeliveryDateID           int             `db:"DeliveryDateId"`
	IsTaxExempt              bool            `db:"IsTaxExempt"`
	TaxCategoryID            int             `db:"TaxCategoryId"`

	ManageInventoryMethodID       int  `db:"ManageInventoryMethodId"`
	ProductAvailabilityRangeID    int  `db:"ProductAvailabilityRangeId"`
	UseMultipleWarehouses         bool `db:"UseMultipleWarehouses"`
	WarehouseID                   int  `db:"WarehouseId"`
	StockQuantity                 int  `db:"StockQuantity"`
	DisplayStockAvailability      bool `db:"DisplayStockAvailability"`
	DisplayStockQuantity          bool `db:"DisplayStockQuantity"`
	MinStockQuantity              int  `db:"MinStockQuantity"`
	LowStockActivityID            int  `db:"LowStockActivityId"`
	NotifyAdminForQuantityBelow   int  `db:"NotifyAdminForQuantityBelow"`
	BackorderModeID               int  `db:"BackorderModeId"`
	AllowBackInStockSubscriptions bool `db:"AllowBackInStockSubscriptions"`
	OrderMinimumQuantity          int  `db:"OrderMinimumQuantity"`
	OrderMaximumQuantity          int  `db:"OrderMaximumQuantity"`

	AllowAddingOnlyExistingAttributeCombinations bool `db:"AllowAddingOnlyExistingAttributeCombinations"`
	DisplayAttributeCombinationImagesOnly        bool `db:"DisplayAttributeCombinationImagesOnly"`

	NotReturnable                        bool       `db:"NotReturnable"`
	DisableBuyButton                     bool       `db:"DisableBuyButton"`
	DisableWishlistButton                bool       `db:"DisableWishlistButton"`
	AvailableForPreOrder                 bool       `db:"AvailableForPreOrder"`
	PreOrderAvailabilityStartDateTimeUtc *time.Time `db:"PreOrderAvailabilityStartDateTimeUtc"`
	CallForPrice                         bool       `db:"CallForPrice"`

	Price                       decimal.Decimal `db:"Price"`
	OldPrice                    decimal.Decimal `db:"OldPrice"`
	ProductCost                 decimal.Decimal `db:"ProductCost"`
	CustomerEntersPrice         bool            `db:"CustomerEntersPrice"`
	MinimumCustomerEnteredPrice decimal.Decimal `db:"MinimumCustomerEnteredPrice"`
	MaximumCustomerEnteredPrice decimal.Decimal `db:"MaximumCustomerEnteredPrice"`

	BasepriceEnabled    bool            `db:"BasepriceEnabled"`
	BasepriceAmount     decimal.Decimal `db:"BasepriceAmount"`
	BasepriceUnitID     int             `db:"BasepriceUnitId"`
	BasepriceBaseAmount decimal.Decimal `db:"BasepriceBaseAmount"`
	BasepriceBaseUnitID int             `db:"BasepriceBaseUnitId"`

	MarkAsNew                 bool       `db:"MarkAsNew"`
	MarkAsNewStartDateTimeUtc *time.Time `db:"MarkAsNewStartDateTimeUtc"`
	MarkAsNewEndDateTimeUtc   *time.Time `db:"MarkAsNewEndDateTimeUtc"`

	Weight decimal.Decimal `db:"Weight"`
	Length decimal.Decimal `db:"Length"`
	Width  decimal.Decimal `db:"Width"`
	Height decimal.Decimal `db:"Height"`

	AvailableStartDateTimeUtc *time.Time `db:"AvailableStartDateTimeUtc"`
	AvailableEndDateTimeUtc   *time.Time `db:"AvailableEndDateTimeUtc"`

	DisplayOrder int       `db:"DisplayOrder"`
	Published    bool      `db:"Published"`
	Deleted      bool      `db:"Deleted"`
	CreatedOnUtc time.Time `db:"CreatedOnUtc"`
	UpdatedOnUtc time.Time `db:"UpdatedOnUtc"`
}

// CategoryAssignment is a Product_Category_Mapping row.
type CategoryAssignment struct {
	ProductID         int64 `db:"ProductId"`
	CategoryID        int64 `db:"CategoryId"`
	IsFeaturedProduct bool  `db:"IsFeaturedProduct"`
	DisplayOrder      int   `db:"DisplayOrder"`
}
