package domain

// LocalizedKey is the natural key of a LocalizedProperty row.
type LocalizedKey struct {
	Group      string `db:"LocaleKeyGroup"` // e.g. "Product"
	Key        string `db:"LocaleKey"`      // e.g. "Name"
	EntityID   int64  `db:"EntityId"`
	LanguageID int64  `db:"LanguageId"`
}

// LocalizedAttribute is a per-language value for one attribute of one entity.
type LocalizedAttribute struct {
	ID int64 `db:"Id"`
	LocalizedKey
	Value string `db:"LocaleValue"`
}

const (
	LocaleGroupProduct = "Product"
	LocaleKeyName      = "Name"
)
