package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExternalCategory is one element of the catalog API's categories feed.
type ExternalCategory struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// Category mirrors the nopCommerce Category table.
type Category struct {
	ID         int64   `db:"Id"`
	ExternalID *string `db:"ApiId"` // slug; unique when non-null

	Name                           string          `db:"Name"`
	MetaKeywords                   string          `db:"MetaKeywords"`
	MetaTitle                      string          `db:"MetaTitle"`
	PageSizeOptions                string          `db:"PageSizeOptions"`
	Description                    string          `db:"Description"`
	CategoryTemplateID             int             `db:"CategoryTemplateId"`
	MetaDescription                string          `db:"MetaDescription"`
	ParentCategoryID               int             `db:"ParentCategoryId"`
	PictureID                      int             `db:"PictureId"`
	PageSize                       int             `db:"PageSize"`
	AllowCustomersToSelectPageSize bool            `db:"AllowCustomersToSelectPageSize"`
	ShowOnHomepage                 bool            `db:"ShowOnHomepage"`
	IncludeInTopMenu               bool            `db:"IncludeInTopMenu"`
	SubjectToACL                   bool            `db:"SubjectToAcl"`
	LimitedToStores                bool            `db:"LimitedToStores"`
	Published                      bool            `db:"Published"`
	Deleted                        bool            `db:"Deleted"`
	DisplayOrder                   int             `db:"DisplayOrder"`
	CreatedOnUtc                   time.Time       `db:"CreatedOnUtc"`
	UpdatedOnUtc                   time.Time       `db:"UpdatedOnUtc"`
	PriceRangeFiltering            bool            `db:"PriceRangeFiltering"`
	PriceFrom                      decimal.Decimal `db:"PriceFrom"`
	PriceTo                        decimal.Decimal `db:"PriceTo"`
	ManuallyPriceRange             bool            `db:"ManuallyPriceRange"`
	RestrictFromVendors            bool            `db:"RestrictFromVendors"`
}
