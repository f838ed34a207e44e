package querying

import (
	"errors"
	"fmt"
)

// Erros específicos para as consultas de comissão
var (
	ErrMarketplaceNotFound = errors.New("marketplace not found")
	ErrCommissionNotFound  = errors.New("commission not found")
)

// QueryError é um erro com contexto adicional para consultas
type QueryError struct {
	Err           error  // Erro base
	Code          string // Código de erro para API
	MarketplaceID string // Marketplace consultado
	Details       string // Detalhes adicionais
}

// Error implementa a interface error
func (e *QueryError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *QueryError) Unwrap() error {
	return e.Err
}

// APICode retorna o código de erro para a API
func (e *QueryError) APICode() string {
	return e.Code
}

// NewQueryError cria um novo QueryError
func NewQueryError(err error, code string, marketplaceID string, details string) *QueryError {
	return &QueryError{
		Err:           err,
		Code:          code,
		MarketplaceID: marketplaceID,
		Details:       details,
	}
}
