package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/internal/usecases/pricing"
	"github.com/vfg2006/commission-engine/internal/usecases/querying"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

// ProfitRequest aceita o caminho da categoria no lugar da comissão
type ProfitRequest struct {
	domain.ProfitParams
	Path *domain.CategoryPath `json:"path,omitempty"`
}

// ListMarketplaces retorna o resumo de cada marketplace configurado
func ListMarketplaces(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, service.GetMarketplaces())
	}
}

func ListCategories(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := service.ListCategories(marketplaceParam(r))
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}
		respondJSON(w, http.StatusOK, categories)
	}
}

func ListSubCategories(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subCategories, err := service.ListSubCategories(marketplaceParam(r), r.URL.Query().Get("category"))
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}
		respondJSON(w, http.StatusOK, subCategories)
	}
}

func ListProductGroups(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		groups, err := service.ListProductGroups(marketplaceParam(r), query.Get("category"), query.Get("subCategory"))
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}
		respondJSON(w, http.StatusOK, groups)
	}
}

// FindCommission busca a comissão do caminho completo informado na query string
func FindCommission(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		path := domain.CategoryPath{
			Category:     query.Get("category"),
			SubCategory:  query.Get("subCategory"),
			ProductGroup: query.Get("productGroup"),
		}

		commission, err := service.FindCommission(marketplaceParam(r), path)
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}
		respondJSON(w, http.StatusOK, commission)
	}
}

func SearchCommissions(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hits, err := service.Search(marketplaceParam(r), r.URL.Query().Get("q"))
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}
		respondJSON(w, http.StatusOK, hits)
	}
}

func ListProductGroupCommissions(service querying.Querier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := service.AggregateByProductGroup(marketplaceParam(r), r.URL.Query().Get("q"))
		if err != nil {
			writeUseCaseError(w, err, apiErrors.ErrInternalServer)
			return
		}
		respondJSON(w, http.StatusOK, entries)
	}
}

// CalculateProfit calcula o lucro de uma venda no marketplace.
// Quando o corpo traz um caminho e nenhuma comissão, a comissão vem da tabela do marketplace.
func CalculateProfit(querier querying.Querier, calculator pricing.ProfitCalculator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var request ProfitRequest
		if err := decodeBody(r, &request); err != nil {
			logrus.WithError(err).Warn("Corpo inválido no cálculo de lucro")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		marketplaceID := marketplaceParam(r)
		params := request.ProfitParams
		params.Marketplace = marketplaceID

		if request.Path != nil && params.CommissionPercent.IsZero() {
			commission, err := querier.FindCommission(marketplaceID, *request.Path)
			if err != nil {
				writeUseCaseError(w, err, apiErrors.ErrInternalServer)
				return
			}
			params.CommissionPercent = decimal.NewFromFloat(commission.Percent)
		}

		result, err := calculator.CalculateCommissionProfit(params)
		if err != nil {
			apiErr := apiErrors.FromError(err, apiErrors.ErrInvalidValue)
			respondJSON(w, apiErrors.StatusFor(apiErr.Code), result)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

func marketplaceParam(r *http.Request) string {
	return httprouter.ParamsFromContext(r.Context()).ByName("id")
}
