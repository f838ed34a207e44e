package apiErrors

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação (2000-2999)
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidValue        = "VAL_004" // Valor fora do intervalo aceito (preço, dimensão, taxa)

	// Erros de dados de marketplace (3000-3999)
	ErrMarketplaceNotFound = "MKT_001" // Marketplace não configurado
	ErrCommissionNotFound  = "MKT_002" // Caminho sem comissão cadastrada
	ErrColumnResolution    = "RES_001" // Tabela de origem sem as colunas necessárias
	ErrSourceUnavailable   = "SRC_001" // Arquivo de origem ausente

	// Erros de roteamento
	ErrRouteNotFound    = "RTE_001" // Rota inexistente
	ErrMethodNotAllowed = "RTE_002" // Método não aceito pela rota

	// Erros do servidor (5000-5999)
	ErrInternalServer = "SRV_001" // Erro interno do servidor
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrMissingRequiredData: http.StatusBadRequest,
	ErrInvalidFormat:       http.StatusBadRequest,
	ErrInvalidValue:        http.StatusBadRequest,
	ErrMarketplaceNotFound: http.StatusNotFound,
	ErrCommissionNotFound:  http.StatusNotFound,
	ErrColumnResolution:    http.StatusUnprocessableEntity,
	ErrSourceUnavailable:   http.StatusServiceUnavailable,
	ErrRouteNotFound:       http.StatusNotFound,
	ErrMethodNotAllowed:    http.StatusMethodNotAllowed,
	ErrInternalServer:      http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

// CodedError é implementado pelos erros dos casos de uso que carregam um código de API
type CodedError interface {
	error
	APICode() string
}

// StatusFor retorna o status HTTP de um código
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go, usando o código do erro quando houver
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	var coded CodedError
	if errors.As(err, &coded) {
		code = coded.APICode()
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
