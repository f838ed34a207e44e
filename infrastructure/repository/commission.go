package repository

import (
	"os"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/vfg2006/commission-engine/infrastructure/datasource"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/internal/normalizer"
	"github.com/vfg2006/commission-engine/pkg/utils"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=commission.go -destination=mocks/mock_commission.go -package=mocks

// CommissionRepository mantém um snapshot por marketplace, recarregado quando o arquivo muda
type CommissionRepository interface {
	Refresh(force bool) bool
	Snapshot(marketplaceID string) (*domain.DatasetSnapshot, bool)
	Definitions() []domain.MarketplaceDefinition
	Status(marketplaceID string) (SourceStatus, bool)
}

type commissionRepository struct {
	fs            afero.Fs
	reader        datasource.TableReader
	normalizer    normalizer.RowNormalizer
	definitions   []domain.MarketplaceDefinition
	sources       map[string]*trackedSource[domain.DatasetSnapshot]
	group         singleflight.Group
	maxConcurrent int
}

// NewCommissionRepository cria o repositório; nada é lido até o primeiro Refresh
func NewCommissionRepository(
	fs afero.Fs,
	locator *datasource.Locator,
	reader datasource.TableReader,
	rowNormalizer normalizer.RowNormalizer,
	definitions []domain.MarketplaceDefinition,
	maxConcurrent int,
) CommissionRepository {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}

	sources := make(map[string]*trackedSource[domain.DatasetSnapshot], len(definitions))
	for _, def := range definitions {
		sources[def.ID] = newTrackedSource(locator.Resolve(def.FileName), domain.EmptySnapshot(def.ID))
	}

	return &commissionRepository{
		fs:            fs,
		reader:        reader,
		normalizer:    rowNormalizer,
		definitions:   definitions,
		sources:       sources,
		maxConcurrent: maxConcurrent,
	}
}

// Refresh verifica todos os marketplaces e retorna true se algum snapshot foi trocado.
// Chamadas sobrepostas para o mesmo marketplace são agrupadas em uma única recarga.
func (r *commissionRepository) Refresh(force bool) bool {
	var changed atomic.Bool

	g := new(errgroup.Group)
	g.SetLimit(r.maxConcurrent)
	for _, def := range r.definitions {
		def := def
		g.Go(func() error {
			key := def.ID + ":" + strconv.FormatBool(force)
			result, _, _ := r.group.Do(key, func() (any, error) {
				return r.refreshMarketplace(def, force), nil
			})
			if result.(bool) {
				changed.Store(true)
			}
			return nil
		})
	}
	_ = g.Wait()

	return changed.Load()
}

func (r *commissionRepository) refreshMarketplace(def domain.MarketplaceDefinition, force bool) bool {
	source := r.sources[def.ID]
	startTime := time.Now()

	changed, err := source.refresh(r.fs, force, func(info os.FileInfo) (*domain.DatasetSnapshot, error) {
		table, err := r.reader.ReadTable(source.path, def.Delimiter)
		if err != nil {
			return nil, err
		}

		rows, err := r.normalizer.Normalize(table, def)
		if err != nil {
			return nil, err
		}

		version, err := utils.GenerateVersion()
		if err != nil {
			return nil, err
		}

		return domain.NewDatasetSnapshot(def.ID, rows, info.ModTime(), version), nil
	}, func() *domain.DatasetSnapshot {
		return domain.EmptySnapshot(def.ID)
	})

	logger := logrus.WithFields(logrus.Fields{
		"marketplace": def.ID,
		"path":        source.path,
	})

	if err != nil {
		logger.WithError(err).Warn("Falha ao recarregar dados do marketplace, mantendo snapshot anterior")
		return false
	}

	if changed {
		snapshot := source.snapshot()
		logger.WithFields(logrus.Fields{
			"rows":     snapshot.Len(),
			"version":  snapshot.Version,
			"duration": time.Since(startTime).String(),
		}).Info("Dados do marketplace recarregados")
	}

	return changed
}

// Snapshot retorna o snapshot atual; false quando o marketplace não está configurado
func (r *commissionRepository) Snapshot(marketplaceID string) (*domain.DatasetSnapshot, bool) {
	source, ok := r.sources[marketplaceID]
	if !ok {
		return nil, false
	}
	return source.snapshot(), true
}

func (r *commissionRepository) Definitions() []domain.MarketplaceDefinition {
	return r.definitions
}

func (r *commissionRepository) Status(marketplaceID string) (SourceStatus, bool) {
	source, ok := r.sources[marketplaceID]
	if !ok {
		return SourceStatus{}, false
	}
	return source.status(), true
}
