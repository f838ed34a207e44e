package normalizer

import (
	"strings"

	"github.com/vfg2006/commission-engine/internal/domain"
)

// Binding associa cada campo canônico a uma coluna da tabela; vazio quando não resolvido
type Binding struct {
	Category     string
	SubCategory  string
	ProductGroup string
	Commission   string
}

var canonicalColumns = []string{
	domain.ColumnCategory,
	domain.ColumnSubCategory,
	domain.ColumnProductGroup,
	domain.ColumnCommission,
}

// Resolve escolhe as colunas da tabela para cada campo canônico
func Resolve(columns []string, def domain.MarketplaceDefinition) (Binding, error) {
	present := make(map[string]struct{}, len(columns))
	for _, column := range columns {
		present[column] = struct{}{}
	}
	has := func(name string) bool {
		_, ok := present[name]
		return ok
	}

	if hasAll(has, canonicalColumns) {
		return Binding{
			Category:     domain.ColumnCategory,
			SubCategory:  domain.ColumnSubCategory,
			ProductGroup: domain.ColumnProductGroup,
			Commission:   domain.ColumnCommission,
		}, nil
	}

	binding := Binding{
		Category:     pickFirstPresent(has, def.Candidates.Category),
		SubCategory:  pickFirstPresent(has, def.Candidates.SubCategory),
		ProductGroup: pickFirstPresent(has, def.Candidates.ProductGroup),
		Commission:   pickFirstPresent(has, def.Candidates.Commission),
	}

	if def.MainCategoryRule && applyMainCategoryRule(has) {
		binding.Category = domain.ColumnMainCategory
		binding.SubCategory = domain.ColumnCategory
	}

	// uma única coluna de categoria vira a categoria; a subcategoria fica vazia
	if binding.Category == binding.SubCategory || binding.Category == "" {
		if binding.Category == "" {
			binding.Category = binding.SubCategory
		}
		binding.SubCategory = ""
	}

	var missing []string
	if binding.ProductGroup == "" {
		missing = append(missing, FieldProductGroup)
	}
	if binding.Category == "" {
		missing = append(missing, FieldCategory, FieldSubCategory)
	}
	if len(missing) > 0 {
		return Binding{}, &ResolutionError{
			MarketplaceID: def.ID,
			Missing:       missing,
			Columns:       columns,
		}
	}

	return binding, nil
}

// applyMainCategoryRule: "Ana Kategori" e "Kategori" presentes, sem "Alt Kategori"
func applyMainCategoryRule(has func(string) bool) bool {
	return has(domain.ColumnMainCategory) && has(domain.ColumnCategory) && !has(domain.ColumnSubCategory)
}

func pickFirstPresent(has func(string) bool, candidates []string) string {
	for _, candidate := range candidates {
		if has(candidate) {
			return candidate
		}
	}
	return ""
}

func hasAll(has func(string) bool, names []string) bool {
	for _, name := range names {
		if !has(name) {
			return false
		}
	}
	return true
}

// cleanHeader remove BOM e espaços de um cabeçalho
func cleanHeader(column string) string {
	return strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))
}
