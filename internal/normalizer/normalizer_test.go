package normalizer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-engine/internal/domain"
)

func TestNormalizer_Normalize(t *testing.T) {
	def := domain.MarketplaceDefinition{
		ID: "trendyol",
		Candidates: domain.ColumnCandidates{
			Category:     []string{"Ana Kategori", "Kategori"},
			SubCategory:  []string{"Kategori", "Alt Kategori"},
			ProductGroup: []string{"Ürün Grubu"},
			Commission:   []string{"komisyon"},
		},
	}

	tests := []struct {
		name     string
		table    *domain.RawTable
		validate func(t *testing.T, rows []domain.CanonicalRow)
	}{
		{
			name: "Frações com vírgula viram percentuais",
			table: &domain.RawTable{
				Columns: []string{"\ufeffAna Kategori ", "Kategori", "Ürün Grubu", "komisyon"},
				Rows: [][]string{
					{" Elektronik ", "Telefon", "Kılıf", "%0,15"},
					{"Moda", "Ayakkabı", "Spor", "0,2"},
				},
			},
			validate: func(t *testing.T, rows []domain.CanonicalRow) {
				require.Len(t, rows, 2)
				assert.Equal(t, "Elektronik", rows[0].Category)
				assert.Equal(t, "Telefon", rows[0].SubCategory)
				assert.Equal(t, "Kılıf", rows[0].ProductGroup)
				require.NotNil(t, rows[0].CommissionPercent)
				assert.Equal(t, 15.0, *rows[0].CommissionPercent)
				assert.Equal(t, 20.0, *rows[1].CommissionPercent)
			},
		},
		{
			name: "Linhas vazias e duplicadas são descartadas na ordem original",
			table: &domain.RawTable{
				Columns: []string{"Ana Kategori", "Kategori", "Ürün Grubu", "komisyon"},
				Rows: [][]string{
					{"Ev", "Mutfak", "Tava", "12"},
					{"  ", "", " ", "5"},
					{"Ev", "Mutfak", "Tava", "12"},
					{"Ev", "Mutfak", "Tava", "14"},
					{"Bahçe"},
				},
			},
			validate: func(t *testing.T, rows []domain.CanonicalRow) {
				require.Len(t, rows, 3)
				assert.Equal(t, 12.0, *rows[0].CommissionPercent)
				assert.Equal(t, 14.0, *rows[1].CommissionPercent)
				assert.Equal(t, "Bahçe", rows[2].Category)
				assert.Nil(t, rows[2].CommissionPercent)
			},
		},
		{
			name: "Comissão sem número fica ausente",
			table: &domain.RawTable{
				Columns: []string{"Kategori", "Alt Kategori", "Ürün Grubu", "Komisyon_%_KDV_Dahil"},
				Rows: [][]string{
					{"Kitap", "Roman", "Yabancı", "-"},
					{"Kitap", "Roman", "Yerli", "8,5"},
				},
			},
			validate: func(t *testing.T, rows []domain.CanonicalRow) {
				require.Len(t, rows, 2)
				assert.Nil(t, rows[0].CommissionPercent)
				assert.Equal(t, 8.5, *rows[1].CommissionPercent)
			},
		},
	}

	normalizer := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := normalizer.Normalize(tt.table, def)
			require.NoError(t, err)
			tt.validate(t, rows)
		})
	}
}

func TestNormalizer_NormalizeResolutionError(t *testing.T) {
	table := &domain.RawTable{
		Columns: []string{"Kategori", "komisyon"},
		Rows:    [][]string{{"Ev", "10"}},
	}
	def := domain.MarketplaceDefinition{
		ID: "n11",
		Candidates: domain.ColumnCandidates{
			Category:     []string{"Kategori"},
			ProductGroup: []string{"Ürün Grubu"},
			Commission:   []string{"komisyon"},
		},
	}

	rows, err := New().Normalize(table, def)
	assert.Nil(t, rows)
	assert.True(t, errors.Is(err, domain.ErrResolution))
}
