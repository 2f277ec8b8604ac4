package enum

import "strings"

// Category is the closed set of triage categories. The model is instructed
// to answer with one of these literal values; anything else maps to CategoryOther.
type Category string

const (
	CategoryTechnicalSupport Category = "Technical Support"
	CategorySales            Category = "Sales"
	CategoryBilling          Category = "Billing"
	CategoryGeneral          Category = "General"
	CategoryReturns          Category = "Returns"
	CategoryOther            Category = "Other"
)

func (t Category) String() string {
	return string(t)
}

func Categories() []Category {
	return []Category{
		CategoryTechnicalSupport,
		CategorySales,
		CategoryBilling,
		CategoryGeneral,
		CategoryReturns,
		CategoryOther,
	}
}

// categoryAliases maps normalized model output to a category. The Spanish
// names are kept because the orchestrator was originally prompted in Spanish
// and older scenarios may still route those literals back to us.
var categoryAliases = map[string]Category{
	"technical support": CategoryTechnicalSupport,
	"tech support":      CategoryTechnicalSupport,
	"soporte tecnico":   CategoryTechnicalSupport,
	"soporte técnico":   CategoryTechnicalSupport,
	"sales":             CategorySales,
	"ventas":            CategorySales,
	"billing":           CategoryBilling,
	"facturacion":       CategoryBilling,
	"facturación":       CategoryBilling,
	"general":           CategoryGeneral,
	"returns":           CategoryReturns,
	"devoluciones":      CategoryReturns,
	"other":             CategoryOther,
	"otro":              CategoryOther,
}

// DecodeCategory maps raw model output to a Category, falling back to
// CategoryOther for anything outside the closed set.
func DecodeCategory(raw string) Category {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.Trim(normalized, `."'`)
	if category, ok := categoryAliases[normalized]; ok {
		return category
	}
	return CategoryOther
}

// IsValidCategory reports whether value is one of the closed-set literals.
// Unlike DecodeCategory it does not fall back, so callers can reject input.
func IsValidCategory(value string) bool {
	for _, category := range Categories() {
		if strings.EqualFold(strings.TrimSpace(value), category.String()) {
			return true
		}
	}
	return false
}
