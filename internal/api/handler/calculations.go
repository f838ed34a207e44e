package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/internal/usecases/shipping"
	"github.com/vfg2006/commission-engine/internal/usecases/taxing"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

type FreightRequest struct {
	Desi float64 `json:"desi"`
}

func CalculateVat(calculator taxing.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.VATRequest
		if err := decodeBody(r, &request); err != nil {
			logrus.WithError(err).Warn("Corpo inválido no cálculo de KDV")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := calculator.Calculate(request)
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInvalidValue)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func CalculateDesi(calculator shipping.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.DesiRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := calculator.CalculateDesi(request)
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInvalidValue)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func CalculateFreight(calculator shipping.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request FreightRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		quote, err := calculator.CalculateFreight(request.Desi)
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInvalidValue)
			return
		}
		respondJSON(w, http.StatusOK, quote)
	}
}

func CalculateCargo(calculator shipping.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request domain.CargoRequest
		if err := decodeBody(r, &request); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		result, err := calculator.CalculateCargo(request)
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInvalidValue)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// GetDesiFactors lista os fatores de desi das transportadoras e os tipos de serviço e região
func GetDesiFactors(calculator shipping.Calculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"factors":      calculator.CommonDesiFactors(),
			"serviceTypes": calculator.ServiceTypes(),
			"regionTypes":  calculator.RegionTypes(),
		})
	}
}
