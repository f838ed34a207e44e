package pricing

import (
	"fmt"

	"github.com/vfg2006/commission-engine/internal/domain"
)

// ErrNonPositiveSalePrice é retornado junto com um resultado zerado
var ErrNonPositiveSalePrice = fmt.Errorf("%w: sale price must be greater than zero", domain.ErrValidation)

// SalePriceMessage é a mensagem exibida ao vendedor quando o preço de venda é inválido
const SalePriceMessage = "Satış fiyatı 0'dan büyük olmalıdır"

// PricingError é um erro com contexto adicional para o cálculo de lucro
type PricingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *PricingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *PricingError) Unwrap() error {
	return e.Err
}

// APICode retorna o código de erro para a API
func (e *PricingError) APICode() string {
	return e.Code
}

// NewPricingError cria um novo PricingError
func NewPricingError(err error, code string, details string) *PricingError {
	return &PricingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
