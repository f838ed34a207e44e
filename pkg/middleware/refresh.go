package middleware

import (
	"net/http"

	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/pkg/log"
)

// RefreshMiddleware verifica o mtime das origens antes de cada requisição.
// O custo é um stat por arquivo. Quando nada mudou, nenhum arquivo é relido.
func RefreshMiddleware(refresher repository.Refresher, enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !enabled || refresher == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodOptions && refresher.Refresh(false) {
				log.ForContext(r.Context()).WithField("changed", true).Debug("Dados recarregados antes da requisição")
			}
			next.ServeHTTP(w, r)
		})
	}
}
