package domain

import "strings"

// PathSeparator separa os níveis no caminho exibido de uma linha
const PathSeparator = " → "

// CanonicalRow é a linha normalizada de qualquer marketplace
type CanonicalRow struct {
	Category          string   `json:"category"`
	SubCategory       string   `json:"subCategory"`
	ProductGroup      string   `json:"productGroup"`
	CommissionPercent *float64 `json:"commissionPercent"`
}

// DisplayPath monta "categoria → subcategoria → grupo", ignorando níveis vazios
func (r CanonicalRow) DisplayPath() string {
	parts := make([]string, 0, 3)
	for _, part := range []string{r.Category, r.SubCategory, r.ProductGroup} {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return strings.Join(parts, PathSeparator)
}

// FullPath mantém os três níveis, inclusive os vazios; é a chave de ordenação da busca
func (r CanonicalRow) FullPath() string {
	return r.Category + PathSeparator + r.SubCategory + PathSeparator + r.ProductGroup
}

// CategoryPath é a chave de consulta (categoria, subcategoria, grupo de produto)
type CategoryPath struct {
	Category     string `json:"category"`
	SubCategory  string `json:"subCategory"`
	ProductGroup string `json:"productGroup"`
}

// Matches verifica se a linha corresponde exatamente ao caminho completo
func (p CategoryPath) Matches(row CanonicalRow) bool {
	return row.Category == p.Category &&
		row.SubCategory == p.SubCategory &&
		row.ProductGroup == p.ProductGroup
}

// Commission é uma taxa resolvida (0-100) com a origem
type Commission struct {
	Percent float64      `json:"percent"`
	Source  string       `json:"source"`
	Path    CategoryPath `json:"path"`
}

// SearchHit é uma linha encontrada pela busca
type SearchHit struct {
	CanonicalRow
	DisplayPath string `json:"displayProductGroup"`
	Priority    int    `json:"priority"`
}

// ProductGroupCommission é a entrada agregada por grupo de produto
type ProductGroupCommission struct {
	ProductGroup      string   `json:"productGroup"`
	Category          string   `json:"category"`
	SubCategory       string   `json:"subCategory"`
	CommissionPercent *float64 `json:"commission"`
	CommissionText    string   `json:"commissionText"`
	DisplayPath       string   `json:"displayProductGroup"`
}
