package taxing

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/commission-engine/internal/config"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

var defaultRate = decimal.NewFromFloat(0.20)

// Calculator faz as contas de KDV com decimal e arredondamento em cada etapa
type Calculator interface {
	AddVat(priceExclVat, rate decimal.Decimal, withholding domain.WithholdingSpec, rounding domain.RoundingMode) (*domain.VATResult, error)
	RemoveVat(priceInclVat, rate decimal.Decimal, withholding domain.WithholdingSpec, rounding domain.RoundingMode) (*domain.VATResult, error)
	DeriveFromVatAmount(vatAmount, rate decimal.Decimal, withholding domain.WithholdingSpec, rounding domain.RoundingMode) (*domain.VATResult, error)
	Calculate(request domain.VATRequest) (*domain.VATResult, error)
}

type Service struct {
	defaultRounding domain.RoundingMode
}

func NewService(cfg *config.Config) Calculator {
	rounding, err := ParseRoundingMode(cfg.Calculation.DefaultVatRounding, domain.RoundingEven)
	if err != nil {
		rounding = domain.RoundingEven
	}
	return &Service{defaultRounding: rounding}
}

// Calculate despacha pela direção do pedido; taxa ausente vale 20%
func (s *Service) Calculate(request domain.VATRequest) (*domain.VATResult, error) {
	rounding, err := ParseRoundingMode(request.Rounding, s.defaultRounding)
	if err != nil {
		return nil, err
	}

	rate := defaultRate
	if request.Rate != nil {
		rate = *request.Rate
	}

	switch domain.VATDirection(strings.ToLower(string(request.Direction))) {
	case domain.VATDirectionAdd, "":
		return s.AddVat(request.Price, rate, request.Withholding, rounding)
	case domain.VATDirectionRemove:
		return s.RemoveVat(request.Price, rate, request.Withholding, rounding)
	case domain.VATDirectionFromVat, "from_kdv":
		return s.DeriveFromVatAmount(request.VATAmount, rate, request.Withholding, rounding)
	}

	return nil, NewTaxError(ErrInvalidDirection, apiErrors.ErrInvalidValue, string(request.Direction))
}

// AddVat: kdv = round(net*rate), brut = round(net+kdv)
func (s *Service) AddVat(priceExclVat, rate decimal.Decimal, withholding domain.WithholdingSpec, rounding domain.RoundingMode) (*domain.VATResult, error) {
	if !priceExclVat.IsPositive() {
		return nil, NewTaxError(ErrNonPositivePrice, apiErrors.ErrInvalidValue, priceExclVat.String())
	}

	ratio, withholdingRate, err := prepare(rate, withholding)
	if err != nil {
		return nil, err
	}

	vat := Round2(priceExclVat.Mul(ratio), rounding)
	gross := Round2(priceExclVat.Add(vat), rounding)

	return build(domain.VATDirectionAdd, rounding, Round2(priceExclVat, rounding), vat, gross, ratio, withholdingRate), nil
}

// RemoveVat: net = round(brut/(1+rate)), kdv = round(brut-net)
func (s *Service) RemoveVat(priceInclVat, rate decimal.Decimal, withholding domain.WithholdingSpec, rounding domain.RoundingMode) (*domain.VATResult, error) {
	if !priceInclVat.IsPositive() {
		return nil, NewTaxError(ErrNonPositivePrice, apiErrors.ErrInvalidValue, priceInclVat.String())
	}

	ratio, withholdingRate, err := prepare(rate, withholding)
	if err != nil {
		return nil, err
	}

	net := Round2(priceInclVat.Div(one.Add(ratio)), rounding)
	vat := Round2(priceInclVat.Sub(net), rounding)

	return build(domain.VATDirectionRemove, rounding, net, vat, Round2(priceInclVat, rounding), ratio, withholdingRate), nil
}

// DeriveFromVatAmount: kdv = round(kdv), net = round(kdv/rate), brut = round(net+kdv)
func (s *Service) DeriveFromVatAmount(vatAmount, rate decimal.Decimal, withholding domain.WithholdingSpec, rounding domain.RoundingMode) (*domain.VATResult, error) {
	if !vatAmount.IsPositive() {
		return nil, NewTaxError(ErrNonPositiveVATAmount, apiErrors.ErrInvalidValue, vatAmount.String())
	}

	ratio, withholdingRate, err := prepare(rate, withholding)
	if err != nil {
		return nil, err
	}
	if ratio.IsZero() {
		return nil, NewTaxError(ErrZeroRate, apiErrors.ErrInvalidValue, "rate = 0")
	}

	vat := Round2(vatAmount, rounding)
	net := Round2(vat.Div(ratio), rounding)
	gross := Round2(net.Add(vat), rounding)

	return build(domain.VATDirectionFromVat, rounding, net, vat, gross, ratio, withholdingRate), nil
}

func prepare(rate decimal.Decimal, withholding domain.WithholdingSpec) (decimal.Decimal, decimal.Decimal, error) {
	ratio, err := NormalizeRate(rate)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	withholdingRate, err := ParseWithholding(withholding)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return ratio, withholdingRate, nil
}

// build aplica a tevkifat sobre o kdv já arredondado
func build(direction domain.VATDirection, rounding domain.RoundingMode, net, vat, gross, ratio, withholdingRate decimal.Decimal) *domain.VATResult {
	withholdingAmount := Round2(vat.Mul(withholdingRate), rounding)
	payable := Round2(vat.Sub(withholdingAmount), rounding)

	return &domain.VATResult{
		Direction:         direction,
		Rounding:          rounding,
		PriceExclVat:      net,
		VATAmount:         vat,
		PriceInclVat:      gross,
		Rate:              ratio,
		WithholdingRate:   withholdingRate,
		WithholdingAmount: withholdingAmount,
		PayableVat:        payable,
	}
}
