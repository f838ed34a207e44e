package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/vfg2006/commission-engine/infrastructure/datasource"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/internal/api"
	"github.com/vfg2006/commission-engine/internal/api/handler"
	"github.com/vfg2006/commission-engine/internal/config"
	"github.com/vfg2006/commission-engine/internal/normalizer"
	"github.com/vfg2006/commission-engine/internal/scheduler"
	"github.com/vfg2006/commission-engine/internal/usecases/pricing"
	"github.com/vfg2006/commission-engine/internal/usecases/querying"
	"github.com/vfg2006/commission-engine/internal/usecases/shipping"
	"github.com/vfg2006/commission-engine/internal/usecases/taxing"
	"github.com/vfg2006/commission-engine/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fs := afero.NewOsFs()
	locator := datasource.NewLocator(fs, cfg.Dataset.DataDir, cfg.App.BaseDir)
	reader := datasource.NewReader(fs)

	commissionRepo := repository.NewCommissionRepository(
		fs,
		locator,
		reader,
		normalizer.New(),
		cfg.Marketplaces,
		cfg.Dataset.MaxConcurrent,
	)
	freightRepo := repository.NewFreightRepository(
		fs,
		reader,
		locator.Resolve(cfg.Freight.TableFile),
		cfg.Freight.DesiColumn,
		cfg.Freight.PriceColumn,
	)
	refresher := repository.RefreshGroup{commissionRepo, freightRepo}

	// Carga inicial; arquivos ausentes viram snapshots vazios
	refresher.Refresh(true)

	reloadService := scheduler.NewDatasetReloadService(refresher, cfg)
	if err := reloadService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga de dados")
	} else {
		logrus.Info("Agendador de recarga de dados iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Querier:            querying.NewService(commissionRepo, cfg),
		TaxCalculator:      taxing.NewService(cfg),
		ShippingCalculator: shipping.NewService(freightRepo, cfg),
		ProfitCalculator:   pricing.NewService(),
		Datasets: handler.DatasetServices{
			Reloader:    reloadService,
			Commissions: commissionRepo,
			Freight:     freightRepo,
		},
		Refresher: refresher,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}
