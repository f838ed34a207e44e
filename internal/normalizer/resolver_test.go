package normalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-engine/internal/domain"
)

func hepsiburadaDefinition() domain.MarketplaceDefinition {
	return domain.MarketplaceDefinition{
		ID: "hepsiburada",
		Candidates: domain.ColumnCandidates{
			Category:     []string{"Ana Kategori", "Kategori"},
			SubCategory:  []string{"Kategori", "Alt Kategori"},
			ProductGroup: []string{"Ürün Grubu", "Urun Grubu"},
			Commission:   []string{"Komisyon_%_KDV_Dahil", "Uygulanan_Komisyon_%_KDV_Dahil"},
		},
		MainCategoryRule: true,
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		columns  []string
		def      domain.MarketplaceDefinition
		expected Binding
	}{
		{
			name:    "Cabeçalhos canônicos usam o caminho direto",
			columns: []string{"Komisyon_%_KDV_Dahil", "Ürün Grubu", "Alt Kategori", "Kategori"},
			def:     domain.MarketplaceDefinition{ID: "any"},
			expected: Binding{
				Category:     "Kategori",
				SubCategory:  "Alt Kategori",
				ProductGroup: "Ürün Grubu",
				Commission:   "Komisyon_%_KDV_Dahil",
			},
		},
		{
			name:    "Regra da categoria principal reinterpreta Kategori como subcategoria",
			columns: []string{"Ana Kategori", "Kategori", "Ürün Grubu", "Uygulanan_Komisyon_%_KDV_Dahil"},
			def:     hepsiburadaDefinition(),
			expected: Binding{
				Category:     "Ana Kategori",
				SubCategory:  "Kategori",
				ProductGroup: "Ürün Grubu",
				Commission:   "Uygulanan_Komisyon_%_KDV_Dahil",
			},
		},
		{
			name:    "Primeiro candidato presente vence",
			columns: []string{"Urun Grubu", "Ürün Grubu", "Kategori", "Alt Kategori"},
			def: domain.MarketplaceDefinition{
				ID: "n11",
				Candidates: domain.ColumnCandidates{
					Category:     []string{"Kategori", "Ana Kategori"},
					SubCategory:  []string{"Alt Kategori", "Kategori"},
					ProductGroup: []string{"Ürün Grubu", "Urun Grubu"},
				},
			},
			expected: Binding{
				Category:     "Kategori",
				SubCategory:  "Alt Kategori",
				ProductGroup: "Ürün Grubu",
			},
		},
		{
			name:    "Mesma coluna para categoria e subcategoria fica só como categoria",
			columns: []string{"Kategori", "Ürün Grubu", "komisyon"},
			def: domain.MarketplaceDefinition{
				ID: "trendyol",
				Candidates: domain.ColumnCandidates{
					Category:     []string{"Ana Kategori", "Kategori"},
					SubCategory:  []string{"Kategori", "Alt Kategori"},
					ProductGroup: []string{"Ürün Grubu"},
					Commission:   []string{"komisyon"},
				},
			},
			expected: Binding{
				Category:     "Kategori",
				ProductGroup: "Ürün Grubu",
				Commission:   "komisyon",
			},
		},
		{
			name:    "Apenas subcategoria resolvida é promovida a categoria",
			columns: []string{"Alt Kategori", "Ürün Grubu"},
			def: domain.MarketplaceDefinition{
				ID: "pttavm",
				Candidates: domain.ColumnCandidates{
					Category:     []string{"Kategori"},
					SubCategory:  []string{"Alt Kategori"},
					ProductGroup: []string{"Ürün Grubu"},
				},
			},
			expected: Binding{
				Category:     "Alt Kategori",
				ProductGroup: "Ürün Grubu",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			binding, err := Resolve(tt.columns, tt.def)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, binding)
		})
	}
}

func TestResolve_MainCategoryRuleDisabled(t *testing.T) {
	def := hepsiburadaDefinition()
	def.MainCategoryRule = false

	binding, err := Resolve([]string{"Ana Kategori", "Kategori", "Ürün Grubu"}, def)
	require.NoError(t, err)

	// sem a regra o resultado vem só da ordem dos candidatos
	assert.Equal(t, "Ana Kategori", binding.Category)
	assert.Equal(t, "Kategori", binding.SubCategory)
}

func TestResolve_Failures(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		missing []string
	}{
		{
			name:    "Sem grupo de produto",
			columns: []string{"Kategori", "Alt Kategori"},
			missing: []string{FieldProductGroup},
		},
		{
			name:    "Sem categoria nem subcategoria",
			columns: []string{"Ürün Grubu", "komisyon"},
			missing: []string{FieldCategory, FieldSubCategory},
		},
		{
			name:    "Sem nada",
			columns: []string{"foo"},
			missing: []string{FieldProductGroup, FieldCategory, FieldSubCategory},
		},
	}

	def := domain.MarketplaceDefinition{
		ID: "amazon",
		Candidates: domain.ColumnCandidates{
			Category:     []string{"Kategori"},
			SubCategory:  []string{"Alt Kategori"},
			ProductGroup: []string{"Ürün Grubu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.columns, def)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrResolution))

			var resolutionErr *ResolutionError
			require.True(t, errors.As(err, &resolutionErr))
			assert.Equal(t, "amazon", resolutionErr.MarketplaceID)
			assert.Equal(t, tt.missing, resolutionErr.Missing)
		})
	}
}
