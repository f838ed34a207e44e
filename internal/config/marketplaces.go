package config

import "github.com/vfg2006/commission-engine/internal/domain"

var (
	productGroupCandidates = []string{"Ürün Grubu", "Urun Grubu", "Urun_Grubu"}
	commissionCandidates   = []string{"Komisyon_%_KDV_Dahil", "komisyon"}
)

// DefaultMarketplaces é o catálogo estático de marketplaces, na ordem de exibição
func DefaultMarketplaces() []domain.MarketplaceDefinition {
	return []domain.MarketplaceDefinition{
		{
			ID:       "trendyol",
			Name:     "Trendyol",
			FileName: "commissions_flat.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Ana Kategori", "Kategori"},
				SubCategory:  []string{"Kategori", "Alt Kategori"},
				ProductGroup: productGroupCandidates,
				Commission:   commissionCandidates,
			},
		},
		{
			ID:       "hepsiburada",
			Name:     "Hepsiburada",
			FileName: "hepsiburada_commissions.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Ana Kategori", "Kategori"},
				SubCategory:  []string{"Kategori", "Alt Kategori"},
				ProductGroup: productGroupCandidates,
				Commission:   []string{"Komisyon_%_KDV_Dahil", "Uygulanan_Komisyon_%_KDV_Dahil", "komisyon"},
			},
			MainCategoryRule: true,
		},
		{
			ID:       "n11",
			Name:     "N11",
			FileName: "n11_commissions.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Kategori", "Ana Kategori"},
				SubCategory:  []string{"Alt Kategori", "Kategori"},
				ProductGroup: productGroupCandidates,
				Commission:   commissionCandidates,
			},
			CountDistinctProductGroups: true,
		},
		{
			ID:       "amazon",
			Name:     "Amazon",
			FileName: "amazon_commissions.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Kategori"},
				SubCategory:  []string{"Alt Kategori"},
				ProductGroup: []string{"Ürün Grubu", "Kategori"},
				Commission:   []string{"Komisyon_%_KDV_Dahil", "Satış Komisyonu (+KDV)"},
			},
			CountDistinctProductGroups: true,
		},
		{
			ID:       "ciceksepeti",
			Name:     "Çiçeksepeti",
			FileName: "ciceksepeti_commissions.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Kategori", "Ana Kategori"},
				SubCategory:  []string{"Alt Kategori", "Kategori"},
				ProductGroup: []string{"Ürün Grubu", "Kategori"},
				Commission:   []string{"Komisyon_%_KDV_Dahil", "Komisyon Oranı", "Revize Komisyon Oranı"},
			},
			CountDistinctProductGroups: true,
		},
		{
			ID:       "pttavm",
			Name:     "PTTAVM",
			FileName: "pttavm_commissions.csv",
			Candidates: domain.ColumnCandidates{
				Category:     []string{"Kategori", "Ana Kategori"},
				SubCategory:  []string{"Alt Kategori"},
				ProductGroup: []string{"Ürün Grubu", "Alt Kategori", "Kategori"},
				Commission:   []string{"Komisyon_%_KDV_Dahil", "Komisyon", "Komisyon Oranları"},
			},
			CountDistinctProductGroups: true,
		},
	}
}
