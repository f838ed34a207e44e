package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeUseCaseError traduz o erro do caso de uso para a resposta padronizada
func writeUseCaseError(w http.ResponseWriter, err error, fallbackCode string) {
	apiErr := apiErrors.FromError(err, fallbackCode)
	apiErrors.WriteError(w, apiErr.Code, apiErr.Message, nil)
}

func decodeBody(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(target)
}
