package taxing

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// ParseRoundingMode aceita even/half_even e up/half_up; vazio usa o padrão informado
func ParseRoundingMode(value string, fallback domain.RoundingMode) (domain.RoundingMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return fallback, nil
	case "even", "half_even":
		return domain.RoundingEven, nil
	case "up", "half_up":
		return domain.RoundingUp, nil
	}
	return "", NewTaxError(ErrInvalidRounding, apiErrors.ErrInvalidValue, value)
}

// Round2 arredonda em duas casas: even é o arredondamento bancário, up afasta o meio do zero
func Round2(value decimal.Decimal, mode domain.RoundingMode) decimal.Decimal {
	if mode == domain.RoundingUp {
		return value.Round(2)
	}
	return value.RoundBank(2)
}

// NormalizeRate converte taxa em percentual inteiro (>= 1) para fração: 20 -> 0.20
func NormalizeRate(rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return decimal.Zero, NewTaxError(ErrRateOutOfRange, apiErrors.ErrInvalidValue, rate.String())
	}
	if rate.GreaterThanOrEqual(one) {
		return rate.Div(hundred), nil
	}
	return rate, nil
}

// ParseWithholding lê a tevkifat como fração "a/b" ou número. Números maiores
// que 1 são percentuais. O resultado fica limitado a [0, 1]; "a/0" vale 0.
func ParseWithholding(spec domain.WithholdingSpec) (decimal.Decimal, error) {
	value := strings.ReplaceAll(strings.TrimSpace(string(spec)), " ", "")
	if value == "" {
		return decimal.Zero, nil
	}

	if numerator, denominator, isFraction := strings.Cut(value, "/"); isFraction {
		a, err := decimal.NewFromString(numerator)
		if err != nil {
			return decimal.Zero, NewTaxError(ErrInvalidWithholding, apiErrors.ErrInvalidFormat, string(spec))
		}
		b, err := decimal.NewFromString(denominator)
		if err != nil {
			return decimal.Zero, NewTaxError(ErrInvalidWithholding, apiErrors.ErrInvalidFormat, string(spec))
		}
		if b.IsZero() {
			return decimal.Zero, nil
		}
		return clampUnit(a.Div(b)), nil
	}

	ratio, err := decimal.NewFromString(strings.Replace(value, ",", ".", 1))
	if err != nil {
		return decimal.Zero, NewTaxError(ErrInvalidWithholding, apiErrors.ErrInvalidFormat, string(spec))
	}
	if ratio.GreaterThan(one) {
		ratio = ratio.Div(hundred)
	}
	return clampUnit(ratio), nil
}

func clampUnit(value decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, decimal.Min(one, value))
}
