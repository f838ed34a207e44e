package normalizer

import (
	"fmt"
	"strings"

	"github.com/vfg2006/commission-engine/internal/domain"
)

// Campos canônicos que podem faltar na resolução
const (
	FieldCategory     = "category"
	FieldSubCategory  = "subCategory"
	FieldProductGroup = "productGroup"
)

// ResolutionError indica que a tabela não tem as colunas mínimas para ser consultada
type ResolutionError struct {
	MarketplaceID string   // marketplace da tabela
	Missing       []string // campos canônicos não resolvidos
	Columns       []string // colunas encontradas na tabela
}

// Error implementa a interface error
func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: marketplace %q missing %s (columns: %s)",
		domain.ErrResolution, e.MarketplaceID, strings.Join(e.Missing, ", "), strings.Join(e.Columns, ", "))
}

// Unwrap retorna a categoria do erro
func (e *ResolutionError) Unwrap() error {
	return domain.ErrResolution
}
