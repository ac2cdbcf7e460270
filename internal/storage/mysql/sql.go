package mysql

// Column lists follow the db tags on domain.Product and domain.Category.
// Updates rewrite every column except Id and CreatedOnUtc.

const insertProductSQL = `
INSERT INTO Product (
  ApiId,
  Name,
  MetaKeywords,
  MetaTitle,
  Sku,
  ManufacturerPartNumber,
  Gtin,
  RequiredProductIds,
  AllowedQuantities,
  ProductTypeId,
  ParentGroupedProductId,
  VisibleIndividually,
  ShortDescription,
  FullDescription,
  AdminComment,
  ProductTemplateId,
  VendorId,
  ShowOnHomepage,
  MetaDescription,
  AllowCustomerReviews,
  ApprovedRatingSum,
  NotApprovedRatingSum,
  ApprovedTotalReviews,
  NotApprovedTotalReviews,
  SubjectToAcl,
  LimitedToStores,
  IsGiftCard,
  GiftCardTypeId,
  OverriddenGiftCardAmount,
  RequireOtherProducts,
  AutomaticallyAddRequiredProducts,
  IsDownload,
  DownloadId,
  UnlimitedDownloads,
  MaxNumberOfDownloads,
  DownloadExpirationDays,
  DownloadActivationTypeId,
  HasSampleDownload,
  SampleDownloadId,
  HasUserAgreement,
  UserAgreementText,
  IsRecurring,
  RecurringCycleLength,
  RecurringCyclePeriodId,
  RecurringTotalCycles,
  IsRental,
  RentalPriceLength,
  RentalPricePeriodId,
  IsShipEnabled,
  IsFreeShipping,
  ShipSeparately,
  AdditionalShippingCharge,
  DeliveryDateId,
  IsTaxExempt,
  TaxCategoryId,
  ManageInventoryMethodId,
  ProductAvailabilityRangeId,
  UseMultipleWarehouses,
  WarehouseId,
  StockQuantity,
  DisplayStockAvailability,
  DisplayStockQuantity,
  MinStockQuantity,
  LowStockActivityId,
  NotifyAdminForQuantityBelow,
  BackorderModeId,
  AllowBackInStockSubscriptions,
  OrderMinimumQuantity,
  OrderMaximumQuantity,
  AllowAddingOnlyExistingAttributeCombinations,
  DisplayAttributeCombinationImagesOnly,
  NotReturnable,
  DisableBuyButton,
  DisableWishlistButton,
  AvailableForPreOrder,
  PreOrderAvailabilityStartDateTimeUtc,
  CallForPrice,
  Price,
  OldPrice,
  ProductCost,
  CustomerEntersPrice,
  MinimumCustomerEnteredPrice,
  MaximumCustomerEnteredPrice,
  BasepriceEnabled,
  BasepriceAmount,
  BasepriceUnitId,
  BasepriceBaseAmount,
  BasepriceBaseUnitId,
  MarkAsNew,
  MarkAsNewStartDateTimeUtc,
  MarkAsNewEndDateTimeUtc,
  Weight,
  Length,
  Width,
  Height,
  AvailableStartDateTimeUtc,
  AvailableEndDateTimeUtc,
  DisplayOrder,
  Published,
  Deleted,
  CreatedOnUtc,
  UpdatedOnUtc
) VALUES (
  :ApiId,
  :Name,
  :MetaKeywords,
  :MetaTitle,
  :Sku,
  :ManufacturerPartNumber,
  :Gtin,
  :RequiredProductIds,
  :AllowedQuantities,
  :ProductTypeId,
  :ParentGroupedProductId,
  :VisibleIndividually,
  :ShortDescription,
  :FullDescription,
  :AdminComment,
  :ProductTemplateId,
  :VendorId,
  :ShowOnHomepage,
  :MetaDescription,
  :AllowCustomerReviews,
  :ApprovedRatingSum,
  :NotApprovedRatingSum,
  :ApprovedTotalReviews,
  :NotApprovedTotalReviews,
  :SubjectToAcl,
  :LimitedToStores,
  :IsGiftCard,
  :GiftCardTypeId,
  :OverriddenGiftCardAmount,
  :RequireOtherProducts,
  :AutomaticallyAddRequiredProducts,
  :IsDownload,
  :DownloadId,
  :UnlimitedDownloads,
  :MaxNumberOfDownloads,
  :DownloadExpirationDays,
  :DownloadActivationTypeId,
  :HasSampleDownload,
  :SampleDownloadId,
  :HasUserAgreement,
  :UserAgreementText,
  :IsRecurring,
  :RecurringCycleLength,
  :RecurringCyclePeriodId,
  :RecurringTotalCycles,
  :IsRental,
  :RentalPriceLength,
  :RentalPricePeriodId,
  :IsShipEnabled,
  :IsFreeShipping,
  :ShipSeparately,
  :AdditionalShippingCharge,
  :DeliveryDateId,
  :IsTaxExempt,
  :TaxCategoryId,
  :ManageInventoryMethodId,
  :ProductAvailabilityRangeId,
  :UseMultipleWarehouses,
  :WarehouseId,
  :StockQuantity,
  :DisplayStockAvailability,
  :DisplayStockQuantity,
  :MinStockQuantity,
  :LowStockActivityId,
  :NotifyAdminForQuantityBelow,
  :BackorderModeId,
  :AllowBackInStockSubscriptions,
  :OrderMinimumQuantity,
  :OrderMaximumQuantity,
  :AllowAddingOnlyExistingAttributeCombinations,
  :DisplayAttributeCombinationImagesOnly,
  :NotReturnable,
  :DisableBuyButton,
  :DisableWishlistButton,
  :AvailableForPreOrder,
  :PreOrderAvailabilityStartDateTimeUtc,
  :CallForPrice,
  :Price,
  :OldPrice,
  :ProductCost,
  :CustomerEntersPrice,
  :MinimumCustomerEnteredPrice,
  :MaximumCustomerEnteredPrice,
  :BasepriceEnabled,
  :BasepriceAmount,
  :BasepriceUnitId,
  :BasepriceBaseAmount,
  :BasepriceBaseUnitId,
  :MarkAsNew,
  :MarkAsNewStartDateTimeUtc,
  :MarkAsNewEndDateTimeUtc,
  :Weight,
  :Length,
  :Width,
  :Height,
  :AvailableStartDateTimeUtc,
  :AvailableEndDateTimeUtc,
  :DisplayOrder,
  :Published,
  :Deleted,
  :CreatedOnUtc,
  :UpdatedOnUtc
)
`

const updateProductSQL = `
UPDATE Product SET
  ApiId                                        = :ApiId,
  Name                                         = :Name,
  MetaKeywords                                 = :MetaKeywords,
  MetaTitle                                    = :MetaTitle,
  Sku                                          = :Sku,
  ManufacturerPartNumber                       = :ManufacturerPartNumber,
  Gtin                                         = :Gtin,
  RequiredProductIds                           = :RequiredProductIds,
  AllowedQuantities                            = :AllowedQuantities,
  ProductTypeId                                = :ProductTypeId,
  ParentGroupedProductId                       = :ParentGroupedProductId,
  VisibleIndividually                          = :VisibleIndividually,
  ShortDescription                             = :ShortDescription,
  FullDescription                              = :FullDescription,
  AdminComment                                 = :AdminComment,
  ProductTemplateId                            = :ProductTemplateId,
  VendorId                                     = :VendorId,
  ShowOnHomepage                               = :ShowOnHomepage,
  MetaDescription                              = :MetaDescription,
  AllowCustomerReviews                         = :AllowCustomerReviews,
  ApprovedRatingSum                            = :ApprovedRatingSum,
  NotApprovedRatingSum                         = :NotApprovedRatingSum,
  ApprovedTotalReviews                         = :ApprovedTotalReviews,
  NotApprovedTotalReviews                      = :NotApprovedTotalReviews,
  SubjectToAcl                                 = :SubjectToAcl,
  LimitedToStores                              = :LimitedToStores,
  IsGiftCard                                   = :IsGiftCard,
  GiftCardTypeId                               = :GiftCardTypeId,
  OverriddenGiftCardAmount                     = :OverriddenGiftCardAmount,
  RequireOtherProducts                         = :RequireOtherProducts,
  AutomaticallyAddRequiredProducts             = :AutomaticallyAddRequiredProducts,
  IsDownload                                   = :IsDownload,
  DownloadId                                   = :DownloadId,
  UnlimitedDownloads                           = :UnlimitedDownloads,
  MaxNumberOfDownloads                         = :MaxNumberOfDownloads,
  DownloadExpirationDays                       = :DownloadExpirationDays,
  DownloadActivationTypeId                     = :DownloadActivationTypeId,
  HasSampleDownload                            = :HasSampleDownload,
  SampleDownloadId                             = :SampleDownloadId,
  HasUserAgreement                             = :HasUserAgreement,
  UserAgreementText                            = :UserAgreementText,
  IsRecurring                                  = :IsRecurring,
  RecurringCycleLength                         = :RecurringCycleLength,
  RecurringCyclePeriodId                       = :RecurringCyclePeriodId,
  RecurringTotalCycles                         = :RecurringTotalCycles,
  IsRental                                     = :IsRental,
  RentalPriceLength                            = :RentalPriceLength,
  RentalPricePeriodId                          = :RentalPricePeriodId,
  IsShipEnabled                                = :IsShipEnabled,
  IsFreeShipping                               = :IsFreeShipping,
  ShipSeparately                               = :ShipSeparately,
  AdditionalShippingCharge                     = :AdditionalShippingCharge,
  DeliveryDateId                               = :DeliveryDateId,
  IsTaxExempt                                  = :IsTaxExempt,
  TaxCategoryId                                = :TaxCategoryId,
  ManageInventoryMethodId                      = :ManageInventoryMethodId,
  ProductAvailabilityRangeId                   = :ProductAvailabilityRangeId,
  UseMultipleWarehouses                        = :UseMultipleWarehouses,
  WarehouseId                                  = :WarehouseId,
  StockQuantity                                = :StockQuantity,
  DisplayStockAvailability                     = :DisplayStockAvailability,
  DisplayStockQuantity                         = :DisplayStockQuantity,
  MinStockQuantity                             = :MinStockQuantity,
  LowStockActivityId                           = :LowStockActivityId,
  NotifyAdminForQuantityBelow                  = :NotifyAdminForQuantityBelow,
  BackorderModeId                              = :BackorderModeId,
  AllowBackInStockSubscriptions                = :AllowBackInStockSubscriptions,
  OrderMinimumQuantity                         = :OrderMinimumQuantity,
  OrderMaximumQuantity                         = :OrderMaximumQuantity,
  AllowAddingOnlyExistingAttributeCombinations = :AllowAddingOnlyExistingAttributeCombinations,
  DisplayAttributeCombinationImagesOnly        = :DisplayAttributeCombinationImagesOnly,
  NotReturnable                                = :NotReturnable,
  DisableBuyButton                             = :DisableBuyButton,
  DisableWishlistButton                        = :DisableWishlistButton,
  AvailableForPreOrder                         = :AvailableForPreOrder,
  PreOrderAvailabilityStartDateTimeUtc         = :PreOrderAvailabilityStartDateTimeUtc,
  CallForPrice                                 = :CallForPrice,
  Price                                        = :Price,
  OldPrice                                     = :OldPrice,
  ProductCost                                  = :ProductCost,
  CustomerEntersPrice                          = :CustomerEntersPrice,
  MinimumCustomerEnteredPrice                  = :MinimumCustomerEnteredPrice,
  MaximumCustomerEnteredPrice                  = :MaximumCustomerEnteredPrice,
  BasepriceEnabled                             = :BasepriceEnabled,
  BasepriceAmount                              = :BasepriceAmount,
  BasepriceUnitId                              = :BasepriceUnitId,
  BasepriceBaseAmount                          = :BasepriceBaseAmount,
  BasepriceBaseUnitId                          = :BasepriceBaseUnitId,
  MarkAsNew                                    = :MarkAsNew,
  MarkAsNewStartDateTimeUtc                    = :MarkAsNewStartDateTimeUtc,
  MarkAsNewEndDateTimeUtc                      = :MarkAsNewEndDateTimeUtc,
  Weight                                       = :Weight,
  Length                                       = :Length,
  Width                                        = :Width,
  Height                                       = :Height,
  AvailableStartDateTimeUtc                    = :AvailableStartDateTimeUtc,
  AvailableEndDateTimeUtc                      = :AvailableEndDateTimeUtc,
  DisplayOrder                                 = :DisplayOrder,
  Published                                    = :Published,
  Deleted                                      = :Deleted,
  UpdatedOnUtc                                 = :UpdatedOnUtc
WHERE Id = :Id
`

const findProductIDSQL = "SELECT Id FROM Product WHERE ApiId = ? LIMIT 1"

const insertCategorySQL = `
INSERT INTO Category (
  ApiId,
  Name,
  MetaKeywords,
  MetaTitle,
  PageSizeOptions,
  Description,
  CategoryTemplateId,
  MetaDescription,
  ParentCategoryId,
  PictureId,
  PageSize,
  AllowCustomersToSelectPageSize,
  ShowOnHomepage,
  IncludeInTopMenu,
  SubjectToAcl,
  LimitedToStores,
  Published,
  Deleted,
  DisplayOrder,
  CreatedOnUtc,
  UpdatedOnUtc,
  PriceRangeFiltering,
  PriceFrom,
  PriceTo,
  ManuallyPriceRange,
  RestrictFromVendors
) VALUES (
  :ApiId,
  :Name,
  :MetaKeywords,
  :MetaTitle,
  :PageSizeOptions,
  :Description,
  :CategoryTemplateId,
  :MetaDescription,
  :ParentCategoryId,
  :PictureId,
  :PageSize,
  :AllowCustomersToSelectPageSize,
  :ShowOnHomepage,
  :IncludeInTopMenu,
  :SubjectToAcl,
  :LimitedToStores,
  :Published,
  :Deleted,
  :DisplayOrder,
  :CreatedOnUtc,
  :UpdatedOnUtc,
  :PriceRangeFiltering,
  :PriceFrom,
  :PriceTo,
  :ManuallyPriceRange,
  :RestrictFromVendors
)
`

const updateCategorySQL = `
UPDATE Category SET
  ApiId                          = :ApiId,
  Name                           = :Name,
  MetaKeywords                   = :MetaKeywords,
  MetaTitle                      = :MetaTitle,
  PageSizeOptions                = :PageSizeOptions,
  Description                    = :Description,
  CategoryTemplateId             = :CategoryTemplateId,
  MetaDescription                = :MetaDescription,
  ParentCategoryId               = :ParentCategoryId,
  PictureId                      = :PictureId,
  PageSize                       = :PageSize,
  AllowCustomersToSelectPageSize = :AllowCustomersToSelectPageSize,
  ShowOnHomepage                 = :ShowOnHomepage,
  IncludeInTopMenu               = :IncludeInTopMenu,
  SubjectToAcl                   = :SubjectToAcl,
  LimitedToStores                = :LimitedToStores,
  Published                      = :Published,
  Deleted                        = :Deleted,
  DisplayOrder                   = :DisplayOrder,
  UpdatedOnUtc                   = :UpdatedOnUtc,
  PriceRangeFiltering            = :PriceRangeFiltering,
  PriceFrom                      = :PriceFrom,
  PriceTo                        = :PriceTo,
  ManuallyPriceRange             = :ManuallyPriceRange,
  RestrictFromVendors            = :RestrictFromVendors
WHERE Id = :Id
`

const findCategoryIDSQL = "SELECT Id FROM Category WHERE ApiId = ? LIMIT 1"

// -----------------------------------------------------------------------------
// RELATIONSHIPS / LOCALIZATION
// -----------------------------------------------------------------------------

const assignmentExistsSQL = `
SELECT EXISTS(
  SELECT 1 FROM Product_Category_Mapping WHERE ProductId = ? AND CategoryId = ?
)
`

const insertAssignmentSQL = `
INSERT INTO Product_Category_Mapping
  (ProductId, CategoryId, IsFeaturedProduct, DisplayOrder)
VALUES
  (:ProductId, :CategoryId, :IsFeaturedProduct, :DisplayOrder)
`

const findLocalizedIDSQL = `
SELECT Id FROM LocalizedProperty
WHERE LocaleKeyGroup = :LocaleKeyGroup
  AND LocaleKey      = :LocaleKey
  AND EntityId       = :EntityId
  AND LanguageId     = :LanguageId
LIMIT 1
`

const insertLocalizedSQL = `
INSERT INTO LocalizedProperty
  (EntityId, LanguageId, LocaleKeyGroup, LocaleKey, LocaleValue)
VALUES
  (:EntityId, :LanguageId, :LocaleKeyGroup, :LocaleKey, :LocaleValue)
`

const updateLocalizedValueSQL = "UPDATE LocalizedProperty SET LocaleValue = ? WHERE Id = ?"

// -----------------------------------------------------------------------------
// SCHEMA
// -----------------------------------------------------------------------------

const columnExistsSQL = `
SELECT COUNT(*) FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? AND COLUMN_NAME = 'ApiId'
`
