package taxing

import (
	"errors"
	"fmt"

	"github.com/vfg2006/commission-engine/internal/domain"
)

// Erros específicos para o cálculo de KDV
var (
	ErrNonPositivePrice     = fmt.Errorf("%w: price must be greater than zero", domain.ErrValidation)
	ErrNonPositiveVATAmount = fmt.Errorf("%w: VAT amount must be greater than zero", domain.ErrValidation)
	ErrRateOutOfRange       = fmt.Errorf("%w: VAT rate must be between 0 and 100", domain.ErrValidation)
	ErrInvalidWithholding   = fmt.Errorf("%w: malformed withholding rate", domain.ErrValidation)
	ErrInvalidRounding      = fmt.Errorf("%w: rounding must be even or up", domain.ErrValidation)
	ErrInvalidDirection     = fmt.Errorf("%w: direction must be add, remove or from_vat", domain.ErrValidation)
	ErrZeroRate             = fmt.Errorf("%w: division by zero deriving price from VAT amount", domain.ErrArithmetic)
)

// TaxError é um erro com contexto adicional para o cálculo de KDV
type TaxError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TaxError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TaxError) Unwrap() error {
	return e.Err
}

// APICode retorna o código de erro para a API
func (e *TaxError) APICode() string {
	return e.Code
}

// NewTaxError cria um novo TaxError
func NewTaxError(err error, code string, details string) *TaxError {
	return &TaxError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

// IsValidation indica se o erro é de validação (erros aritméticos entram nessa classe)
func IsValidation(err error) bool {
	return errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrArithmetic)
}
