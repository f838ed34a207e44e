// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

// Cabeçalhos canônicos das tabelas de comissão
const (
	ColumnCategory     = "Kategori"
	ColumnSubCategory  = "Alt Kategori"
	ColumnProductGroup = "Ürün Grubu"
	ColumnCommission   = "Komisyon_%_KDV_Dahil"
	ColumnMainCategory = "Ana Kategori"
)

// ColumnCandidates lista, em ordem de prioridade, os nomes de coluna aceitos para cada campo canônico
type ColumnCandidates struct {
	Category     []string `json:"category"`
	SubCategory  []string `json:"subCategory"`
	ProductGroup []string `json:"productGroup"`
	Commission   []string `json:"commission"`
}

// MarketplaceDefinition descreve um marketplace e como sua tabela de origem deve ser lida
type MarketplaceDefinition struct {
	ID         string
	Name       string
	FileName   string
	Delimiter  rune
	Candidates ColumnCandidates

	// MainCategoryRule habilita a regra da Hepsiburada: com "Ana Kategori" e "Kategori"
	// presentes e sem "Alt Kategori", "Kategori" passa a ser a subcategoria.
	MainCategoryRule bool

	// CountDistinctProductGroups faz o total de produtos ser a quantidade de grupos distintos
	CountDistinctProductGroups bool
}

// MarketplaceInfo é o resumo exposto por getMarketplaces
type MarketplaceInfo struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Path         string     `json:"csvPath"`
	Exists       bool       `json:"exists"`
	RowCount     int        `json:"rowCount"`
	ProductCount int        `json:"productCount"`
	LoadedAt     *time.Time `json:"loadedAt,omitempty"`
	Version      string     `json:"version,omitempty"`
	LastError    string     `json:"lastError,omitempty"`
}
