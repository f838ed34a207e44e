package handler

import (
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/internal/usecases/querying"
	"github.com/vfg2006/commission-engine/internal/usecases/shipping"
	"github.com/vfg2006/commission-engine/internal/usecases/taxing"
)

var healthVatRate = decimal.NewFromInt(20)

// HealthcheckHandler executa um cálculo de cada tipo e devolve o resumo dos marketplaces.
// A tabela de frete ausente aparece como "freight": false sem derrubar o status.
func HealthcheckHandler(querier querying.Querier, taxCalculator taxing.Calculator, shippingCalculator shipping.Calculator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		factor := 3000.0
		_, desiErr := shippingCalculator.CalculateDesi(domain.DesiRequest{Width: 10, Height: 10, Length: 10, DesiFactor: &factor})
		_, vatErr := taxCalculator.Calculate(domain.VATRequest{
			Direction: domain.VATDirectionAdd,
			Price:     decimal.NewFromInt(100),
			Rate:      &healthVatRate,
		})
		_, freightErr := shippingCalculator.CalculateFreight(5)

		features := map[string]bool{
			"commission": true,
			"vat":        vatErr == nil,
			"desi":       desiErr == nil,
			"freight":    freightErr == nil,
		}
		if vatErr != nil || desiErr != nil {
			logrus.WithFields(logrus.Fields{"features": features}).Warn("Healthcheck com cálculo falhando")
		}

		respondJSON(w, http.StatusOK, map[string]any{
			"status":       "ok",
			"time":         time.Now(),
			"features":     features,
			"marketplaces": querier.GetMarketplaces(),
		})
	})
}
