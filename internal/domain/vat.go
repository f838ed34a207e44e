package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// VATDirection define o sentido do cálculo de KDV
type VATDirection string

const (
	VATDirectionAdd     VATDirection = "add"
	VATDirectionRemove  VATDirection = "remove"
	VATDirectionFromVat VATDirection = "from_vat"
)

// RoundingMode define o arredondamento aplicado em duas casas decimais
type RoundingMode string

const (
	RoundingEven RoundingMode = "even" // meio para o par
	RoundingUp   RoundingMode = "up"   // meio para longe do zero
)

// WithholdingSpec aceita "a/b" ou um número; no JSON pode vir como string ou número
type WithholdingSpec string

func (w *WithholdingSpec) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*w = ""
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		value, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		*w = WithholdingSpec(value)
		return nil
	}
	*w = WithholdingSpec(raw)
	return nil
}

// VATRequest é a entrada de calculateVat
type VATRequest struct {
	Direction   VATDirection     `json:"direction"`
	Price       decimal.Decimal  `json:"price"`
	VATAmount   decimal.Decimal  `json:"vatAmount"`
	Rate        *decimal.Decimal `json:"rate"`
	Withholding WithholdingSpec  `json:"withholdingRate"`
	Rounding    string           `json:"rounding"`
}

// VATResult traz os valores monetários já arredondados em duas casas
type VATResult struct {
	Direction         VATDirection    `json:"direction"`
	Rounding          RoundingMode    `json:"rounding"`
	PriceExclVat      decimal.Decimal `json:"priceExclVat"`
	VATAmount         decimal.Decimal `json:"vatAmount"`
	PriceInclVat      decimal.Decimal `json:"priceInclVat"`
	Rate              decimal.Decimal `json:"rate"`
	WithholdingRate   decimal.Decimal `json:"withholdingRate"`
	WithholdingAmount decimal.Decimal `json:"withholdingAmount"`
	PayableVat        decimal.Decimal `json:"payableVat"`
}
