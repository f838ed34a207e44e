package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

// DatasetReloader é o agendador de recarga visto pelos handlers
type DatasetReloader interface {
	ForceReload() (changed bool, started bool)
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// DatasetServices reúne o que os endpoints administrativos de dados precisam
type DatasetServices struct {
	Reloader    DatasetReloader
	Commissions repository.CommissionRepository
	Freight     repository.FreightRepository
}

// ReloadDatasets força a releitura de todas as origens.
// Com ?async=true a recarga roda em background e a resposta é 202.
func ReloadDatasets(services DatasetServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ReloadDatasets")

		if services.Reloader == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de recarga não disponível", nil)
			return
		}

		if r.URL.Query().Get("async") == "true" {
			started := services.Reloader.TriggerManualSync()
			message := "Recarga iniciada em background"
			if !started {
				message = "Recarga já em andamento"
			}
			respondJSON(w, http.StatusAccepted, map[string]any{
				"message": message,
				"started": started,
			})
			return
		}

		changed, started := services.Reloader.ForceReload()
		if !started {
			respondJSON(w, http.StatusAccepted, map[string]any{
				"message": "Recarga já em andamento",
				"started": false,
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"message": "Recarga concluída",
			"started": true,
			"changed": changed,
		})
	}
}

// GetDatasetStatus retorna o estado do agendador e de cada arquivo de origem
func GetDatasetStatus(services DatasetServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sources := make(map[string]repository.SourceStatus)
		if services.Commissions != nil {
			for _, def := range services.Commissions.Definitions() {
				if status, ok := services.Commissions.Status(def.ID); ok {
					sources[def.ID] = status
				}
			}
		}

		response := map[string]any{"sources": sources}
		if services.Freight != nil {
			response["freight"] = services.Freight.Status()
		}
		if services.Reloader != nil {
			response["reload"] = services.Reloader.GetStatus()
		}

		respondJSON(w, http.StatusOK, response)
	}
}
