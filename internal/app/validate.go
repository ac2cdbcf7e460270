package app

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"nopsync/internal/domain"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9-]+$`)

// check is one validator tag plus the message reported when it fails.
type check struct {
	tag string
	msg string
}

// fieldRule checks one field; the first failing check wins.
type fieldRule[T any] struct {
	field  string
	value  func(T) any
	checks []check
}

var productRules = []fieldRule[*domain.ExternalProduct]{
	{
		field: "Id",
		value: func(p *domain.ExternalProduct) any { return p.ID },
		checks: []check{
			{"gt=0", "Product ID must be greater than 0"},
		},
	},
	{
		field: "Title",
		value: func(p *domain.ExternalProduct) any { return p.Title },
		checks: []check{
			{"notblank", "Product title is required"},
			{"max=255", "Product title must be between 1 and 255 characters"},
		},
	},
	{
		field: "Price",
		value: func(p *domain.ExternalProduct) any { return p.Price },
		checks: []check{
			{"gte=0", "Product price must be greater than or equal to 0"},
		},
	},
	{
		field: "Description",
		value: func(p *domain.ExternalProduct) any { return p.Description },
		checks: []check{
			{"max=1000", "Product description must not exceed 1000 characters"},
		},
	},
	{
		field: "Category",
		value: func(p *domain.ExternalProduct) any { return p.Category },
		checks: []check{
			{"notblank", "Product category is required"},
			{"max=100", "Product category must be between 1 and 100 characters"},
		},
	},
}

var categoryRules = []fieldRule[*domain.ExternalCategory]{
	{
		field: "Name",
		value: func(c *domain.ExternalCategory) any { return c.Name },
		checks: []check{
			{"notblank", "Category name is required"},
			{"max=255", "Category name must be between 1 and 255 characters"},
		},
	},
	{
		field: "Slug",
		value: func(c *domain.ExternalCategory) any { return c.Slug },
		checks: []check{
			{"notblank", "Category slug is required"},
			{"max=255", "Category slug must be between 1 and 255 characters"},
			{"slug", "Category slug can only contain lowercase letters, numbers, and hyphens"},
		},
	},
}

// Validator gates feed records before they are mapped. Every field is
// checked, so a record reports all of its problems at once.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// gte/lte on money compare the float value
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		d, ok := f.Interface().(decimal.Decimal)
		if !ok {
			return nil
		}
		return d.InexactFloat64()
	}, decimal.Decimal{})

	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegex.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return &Validator{v: v}
}

func (val *Validator) ValidateProduct(p *domain.ExternalProduct) []domain.FieldError {
	if p == nil {
		return []domain.FieldError{{Field: "Product", Message: "Product cannot be null"}}
	}
	return applyRules(val.v, productRules, p)
}

func (val *Validator) ValidateCategory(c *domain.ExternalCategory) []domain.FieldError {
	if c == nil {
		return []domain.FieldError{{Field: "Category", Message: "Category cannot be null"}}
	}
	return applyRules(val.v, categoryRules, c)
}

func applyRules[T any](v *validator.Validate, rules []fieldRule[T], rec T) []domain.FieldError {
	var out []domain.FieldError
	for _, r := range rules {
		val := r.value(rec)
		for _, c := range r.checks {
			if err := v.Var(val, c.tag); err != nil {
				out = append(out, domain.FieldError{Field: r.field, Message: c.msg})
				break
			}
		}
	}
	return out
}

func joinFieldErrors(errs []domain.FieldError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}
