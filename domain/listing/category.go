package listing

import "github.com/sitebid/goapi/domain"

type Category string

const (
	CategoryEcommerce   Category = "ecommerce"
	CategorySaas        Category = "saas"
	CategoryContent     Category = "content"
	CategoryMarketplace Category = "marketplace"
	CategoryAffiliate   Category = "affiliate"
	CategoryOther       Category = "other"
)

// CategoryInfo is the display configuration of a category, consumed by
// both the filter UI payload and the result-set title
type CategoryInfo struct {
	Label      string `json:"label"`
	BadgeColor string `json:"badgeColor"`
}

var categoryConfig = map[Category]CategoryInfo{
	CategoryEcommerce:   {Label: "E-commerce Sites", BadgeColor: "green"},
	CategorySaas:        {Label: "SaaS Businesses", BadgeColor: "blue"},
	CategoryContent:     {Label: "Content Sites", BadgeColor: "purple"},
	CategoryMarketplace: {Label: "Marketplaces", BadgeColor: "orange"},
	CategoryAffiliate:   {Label: "Affiliate Sites", BadgeColor: "yellow"},
	CategoryOther:       {Label: "Other Businesses", BadgeColor: "gray"},
}

func (c Category) IsValid() bool {
	_, ok := categoryConfig[c]
	return ok
}

// Info returns the display configuration, falling back to CategoryOther
// for unrecognized values
func (c Category) Info() CategoryInfo {
	if info, ok := categoryConfig[c]; ok {
		return info
	}
	return categoryConfig[CategoryOther]
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", domain.ErrInvalidCategory
	}
	return c, nil
}

func Categories() []Category {
	return []Category{
		CategoryEcommerce,
		CategorySaas,
		CategoryContent,
		CategoryMarketplace,
		CategoryAffiliate,
		CategoryOther,
	}
}
