package shipping

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/commission-engine/internal/domain"
)

const (
	minimumBillableWeight = 0.5 // kg
	defaultRatePerDesi    = 5.0 // TL por desi
)

// weightBreakpoint é uma faixa da tabela de preço base por peso
type weightBreakpoint struct {
	maxWeight float64
	price     decimal.Decimal
}

// baseTariff em ordem crescente de peso (kg -> TL)
var baseTariff = []weightBreakpoint{
	{0.5, decimal.NewFromInt(15)},
	{1, decimal.NewFromInt(20)},
	{2, decimal.NewFromInt(25)},
	{3, decimal.NewFromInt(30)},
	{5, decimal.NewFromInt(40)},
	{10, decimal.NewFromInt(60)},
	{20, decimal.NewFromInt(100)},
	{30, decimal.NewFromInt(140)},
	{50, decimal.NewFromInt(200)},
}

// extraKgPrice é cobrado por kg acima da última faixa
var extraKgPrice = decimal.NewFromInt(3)

var serviceMultipliers = map[domain.ServiceType]decimal.Decimal{
	domain.ServiceStandard: decimal.NewFromInt(1),
	domain.ServiceFast:     decimal.RequireFromString("1.3"),
	domain.ServiceNextDay:  decimal.RequireFromString("1.5"),
	domain.ServiceSameDay:  decimal.NewFromInt(2),
}

var regionMultipliers = map[domain.RegionType]decimal.Decimal{
	domain.RegionSameCity:   decimal.NewFromInt(1),
	domain.RegionNearbyCity: decimal.RequireFromString("1.2"),
	domain.RegionFarCity:    decimal.RequireFromString("1.5"),
	domain.RegionRemoteArea: decimal.NewFromInt(2),
}

// Option é um valor selecionável com rótulo para exibição
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var serviceTypeOptions = []Option{
	{string(domain.ServiceStandard), "Standart Kargo"},
	{string(domain.ServiceFast), "Hızlı Kargo"},
	{string(domain.ServiceNextDay), "Ertesi Gün"},
	{string(domain.ServiceSameDay), "Aynı Gün"},
}

var regionTypeOptions = []Option{
	{string(domain.RegionSameCity), "Aynı Şehir"},
	{string(domain.RegionNearbyCity), "Yakın Şehir"},
	{string(domain.RegionFarCity), "Uzak Şehir"},
	{string(domain.RegionRemoteArea), "Uzak Bölge"},
}

// commonDesiFactors são os fatores de desi usados pelas transportadoras mais comuns
var commonDesiFactors = map[string]float64{
	"yurtici_kargo": 3000,
	"mng_kargo":     3000,
	"aras_kargo":    3000,
	"ptt_kargo":     3000,
	"ups":           5000,
	"fedex":         5000,
	"dhl":           5000,
	"tnt":           5000,
	"standard":      3000,
}

// basePrice usa a primeira faixa que comporta o peso; acima da última, soma o kg excedente
func basePrice(weight float64) decimal.Decimal {
	for _, breakpoint := range baseTariff {
		if weight <= breakpoint.maxWeight {
			return breakpoint.price
		}
	}

	last := baseTariff[len(baseTariff)-1]
	extra := decimal.NewFromFloat(weight).Sub(decimal.NewFromFloat(last.maxWeight))
	return last.price.Add(extra.Mul(extraKgPrice))
}
