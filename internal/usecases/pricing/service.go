package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

var hundred = decimal.NewFromInt(100)

type ProfitCalculator interface {
	CalculateCommissionProfit(params domain.ProfitParams) (*domain.ProfitResult, error)
}

type Service struct{}

func NewService() ProfitCalculator {
	return &Service{}
}

// CalculateCommissionProfit decompõe a venda em repasse, lucro e KDV.
// Com preço de venda <= 0 devolve o resultado zerado (params vazios) com a mensagem
// de erro e o erro de validação.
func (s *Service) CalculateCommissionProfit(params domain.ProfitParams) (*domain.ProfitResult, error) {
	if !params.SalePrice.IsPositive() {
		return &domain.ProfitResult{
			Marketplace: params.Marketplace,
			Error:       SalePriceMessage,
		}, NewPricingError(ErrNonPositiveSalePrice, apiErrors.ErrInvalidValue, params.SalePrice.String())
	}

	sale := params.SalePrice
	commission := percentOf(sale, params.CommissionPercent)
	service := percentOf(sale, params.ServicePercent)
	export := percentOf(sale, params.ExportPercent)

	payout := sale.Sub(commission.Add(service).Add(export).Add(params.CargoPrice))
	netProfit := payout.Sub(params.BuyPrice)
	margin := netProfit.Div(sale).Mul(hundred)

	saleVat := vatShare(sale, params.VatPercent)
	buyVat := vatShare(params.BuyPrice, params.VatPercent)
	commissionVat := vatShare(commission, params.VatPercent)
	serviceVat := vatShare(service, params.VatPercent)
	exportVat := vatShare(export, params.VatPercent)

	inputVat := buyVat
	if params.IncludeVatDeduction {
		inputVat = inputVat.Add(commissionVat).Add(serviceVat).Add(exportVat)
	}
	payableVat := decimal.Max(saleVat.Sub(inputVat), decimal.Zero)

	return &domain.ProfitResult{
		Marketplace:       params.Marketplace,
		Payout:            round(payout),
		NetProfit:         round(netProfit),
		ProfitMargin:      round(margin),
		NetMargin:         round(margin),
		DetailedProfitNet: round(netProfit),
		CommissionAmount:  round(commission),
		ServiceAmount:     round(service),
		ExportAmount:      round(export),
		CargoDeduction:    round(params.CargoPrice),
		SaleVat:           round(saleVat),
		BuyVat:            round(buyVat),
		CommVat:           round(commissionVat),
		ServVat:           round(serviceVat),
		ExpVat:            round(exportVat),
		InputVat:          round(inputVat),
		PayableVat:        round(payableVat),
		Params:            params,
	}, nil
}

func percentOf(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// vatShare extrai o KDV embutido em um valor bruto: bruto * taxa / (100 + taxa)
func vatShare(gross, ratePercent decimal.Decimal) decimal.Decimal {
	if !ratePercent.IsPositive() {
		return decimal.Zero
	}
	return gross.Mul(ratePercent).Div(hundred.Add(ratePercent))
}

// round arredonda só no fim, em duas casas, meio para o par
func round(value decimal.Decimal) decimal.Decimal {
	return value.RoundBank(2)
}
