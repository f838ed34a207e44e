// Package normalizer converte tabelas de comissão de formatos variados no modelo canônico de 4 colunas
package normalizer

import (
	"strconv"
	"strings"

	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/utils"
)

// RowNormalizer transforma uma tabela bruta em linhas canônicas
type RowNormalizer interface {
	Normalize(table *domain.RawTable, def domain.MarketplaceDefinition) ([]domain.CanonicalRow, error)
}

type Normalizer struct{}

func New() *Normalizer {
	return &Normalizer{}
}

// Normalize resolve as colunas, extrai as comissões, corrige a escala,
// remove linhas vazias e duplicadas mantendo a ordem da primeira ocorrência.
func (n *Normalizer) Normalize(table *domain.RawTable, def domain.MarketplaceDefinition) ([]domain.CanonicalRow, error) {
	columns := make([]string, len(table.Columns))
	for i, column := range table.Columns {
		columns[i] = cleanHeader(column)
	}

	binding, err := Resolve(columns, def)
	if err != nil {
		return nil, err
	}

	cleaned := &domain.RawTable{Columns: columns, Rows: table.Rows}
	index := cleaned.ColumnIndex()
	position := func(column string) int {
		if column == "" {
			return -1
		}
		return index[column]
	}
	categoryAt := position(binding.Category)
	subCategoryAt := position(binding.SubCategory)
	productGroupAt := position(binding.ProductGroup)
	commissionAt := position(binding.Commission)

	rows := make([]domain.CanonicalRow, 0, len(table.Rows))
	commissions := make([]*float64, 0, len(table.Rows))
	for _, raw := range table.Rows {
		row := domain.CanonicalRow{
			Category:     strings.TrimSpace(cleaned.Cell(raw, categoryAt)),
			SubCategory:  strings.TrimSpace(cleaned.Cell(raw, subCategoryAt)),
			ProductGroup: strings.TrimSpace(cleaned.Cell(raw, productGroupAt)),
		}
		if value, ok := utils.ExtractNumber(cleaned.Cell(raw, commissionAt)); ok {
			row.CommissionPercent = &value
		}
		rows = append(rows, row)
	}

	// a escala é decidida sobre a coluna inteira, antes do descarte de linhas
	for i := range rows {
		commissions = append(commissions, rows[i].CommissionPercent)
	}
	NormalizeScale(commissions)

	return dedupe(rows), nil
}

// dedupe descarta linhas sem nenhum nível preenchido e duplicatas exatas
func dedupe(rows []domain.CanonicalRow) []domain.CanonicalRow {
	seen := make(map[string]struct{}, len(rows))
	result := make([]domain.CanonicalRow, 0, len(rows))
	for _, row := range rows {
		if row.Category == "" && row.SubCategory == "" && row.ProductGroup == "" {
			continue
		}
		key := rowKey(row)
		if _, duplicated := seen[key]; duplicated {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, row)
	}
	return result
}

func rowKey(row domain.CanonicalRow) string {
	commission := "-"
	if row.CommissionPercent != nil {
		commission = strconv.FormatFloat(*row.CommissionPercent, 'g', -1, 64)
	}
	return strings.Join([]string{row.Category, row.SubCategory, row.ProductGroup, commission}, "\x00")
}
