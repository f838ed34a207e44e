package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/internal/api/handler"
	"github.com/vfg2006/commission-engine/internal/api/handler/router"
	"github.com/vfg2006/commission-engine/internal/config"
	"github.com/vfg2006/commission-engine/internal/usecases/pricing"
	"github.com/vfg2006/commission-engine/internal/usecases/querying"
	"github.com/vfg2006/commission-engine/internal/usecases/shipping"
	"github.com/vfg2006/commission-engine/internal/usecases/taxing"
	"github.com/vfg2006/commission-engine/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa os casos de uso expostos pela API
type Services struct {
	Querier            querying.Querier
	TaxCalculator      taxing.Calculator
	ShippingCalculator shipping.Calculator
	ProfitCalculator   pricing.ProfitCalculator
	Datasets           handler.DatasetServices
	Refresher          repository.Refresher
}

func New(config *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Querier, services.TaxCalculator, services.ShippingCalculator)...),
		router.WithRoutes(handler.Marketplaces(
			services.Querier,
			services.ProfitCalculator,
			middleware.RefreshMiddleware(services.Refresher, config.Dataset.RefreshOnRequest),
		)...),
		router.WithRoutes(handler.Calculations(services.TaxCalculator, services.ShippingCalculator)...),
		router.WithRoutes(handler.Datasets(services.Datasets)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Cors.AllowedOrigins),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
