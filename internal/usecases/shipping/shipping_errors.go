package shipping

import (
	"fmt"

	"github.com/vfg2006/commission-engine/internal/domain"
)

// Erros específicos para desi e frete
var (
	ErrNonPositiveDimension = fmt.Errorf("%w: width, height and length must be greater than zero", domain.ErrValidation)
	ErrNonPositiveFactor    = fmt.Errorf("%w: desi factor must be greater than zero", domain.ErrValidation)
	ErrNonPositiveDesi      = fmt.Errorf("%w: desi must be greater than zero", domain.ErrValidation)
	ErrNonPositiveRate      = fmt.Errorf("%w: rate per desi must be greater than zero", domain.ErrValidation)
	ErrNonPositiveWeight    = fmt.Errorf("%w: actual weight must be greater than zero", domain.ErrValidation)
	ErrInvalidServiceType   = fmt.Errorf("%w: unknown service type", domain.ErrValidation)
	ErrInvalidRegionType    = fmt.Errorf("%w: unknown region type", domain.ErrValidation)
	ErrFreightTableMissing  = fmt.Errorf("%w: freight price table not found", domain.ErrSourceUnavailable)
)

// ShippingError é um erro com contexto adicional para os cálculos de frete
type ShippingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ShippingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ShippingError) Unwrap() error {
	return e.Err
}

// APICode retorna o código de erro para a API
func (e *ShippingError) APICode() string {
	return e.Code
}

// NewShippingError cria um novo ShippingError
func NewShippingError(err error, code string, details string) *ShippingError {
	return &ShippingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
