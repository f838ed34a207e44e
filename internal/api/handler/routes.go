package handler

import (
	"net/http"

	"github.com/vfg2006/commission-engine/internal/api/handler/router"
	"github.com/vfg2006/commission-engine/internal/usecases/pricing"
	"github.com/vfg2006/commission-engine/internal/usecases/querying"
	"github.com/vfg2006/commission-engine/internal/usecases/shipping"
	"github.com/vfg2006/commission-engine/internal/usecases/taxing"
)

func Healthcheck(querier querying.Querier, taxCalculator taxing.Calculator, shippingCalculator shipping.Calculator) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(querier, taxCalculator, shippingCalculator),
		},
	}
}

// Marketplaces são as rotas que leem os snapshots; datasetMiddlewares (ex.: verificação
// de mtime) valem só para elas
func Marketplaces(querier querying.Querier, profitCalculator pricing.ProfitCalculator, datasetMiddlewares ...router.Middleware) []router.Route {
	return router.Use([]router.Route{
		{
			Path:    "/v1/marketplaces",
			Method:  http.MethodGet,
			Handler: ListMarketplaces(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/sub-categories",
			Method:  http.MethodGet,
			Handler: ListSubCategories(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/product-groups",
			Method:  http.MethodGet,
			Handler: ListProductGroups(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/commission",
			Method:  http.MethodGet,
			Handler: FindCommission(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/search",
			Method:  http.MethodGet,
			Handler: SearchCommissions(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/product-group-commissions",
			Method:  http.MethodGet,
			Handler: ListProductGroupCommissions(querier),
		},
		{
			Path:    "/v1/marketplaces/:id/profit",
			Method:  http.MethodPost,
			Handler: CalculateProfit(querier, profitCalculator),
		},
	}, datasetMiddlewares...)
}

func Calculations(taxCalculator taxing.Calculator, shippingCalculator shipping.Calculator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/calc/vat",
			Method:  http.MethodPost,
			Handler: CalculateVat(taxCalculator),
		},
		{
			Path:    "/v1/calc/desi",
			Method:  http.MethodPost,
			Handler: CalculateDesi(shippingCalculator),
		},
		{
			Path:    "/v1/calc/desi/factors",
			Method:  http.MethodGet,
			Handler: GetDesiFactors(shippingCalculator),
		},
		{
			Path:    "/v1/calc/freight",
			Method:  http.MethodPost,
			Handler: CalculateFreight(shippingCalculator),
		},
		{
			Path:    "/v1/calc/cargo",
			Method:  http.MethodPost,
			Handler: CalculateCargo(shippingCalculator),
		},
	}
}

func Datasets(services DatasetServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/datasets/reload",
			Method:  http.MethodPost,
			Handler: ReloadDatasets(services),
		},
		{
			Path:    "/v1/datasets/status",
			Method:  http.MethodGet,
			Handler: GetDatasetStatus(services),
		},
	}
}
