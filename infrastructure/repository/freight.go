package repository

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/vfg2006/commission-engine/infrastructure/datasource"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/utils"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=freight.go -destination=mocks/mock_freight.go -package=mocks

// FreightRepository mantém a tabela de preço por desi
type FreightRepository interface {
	Refresh(force bool) bool
	Table() (*domain.FreightTable, bool)
	Status() SourceStatus
}

type freightRepository struct {
	fs          afero.Fs
	reader      datasource.TableReader
	desiColumn  string
	priceColumn string
	source      *trackedSource[domain.FreightTable]
	group       singleflight.Group
}

func NewFreightRepository(fs afero.Fs, reader datasource.TableReader, path, desiColumn, priceColumn string) FreightRepository {
	return &freightRepository{
		fs:          fs,
		reader:      reader,
		desiColumn:  desiColumn,
		priceColumn: priceColumn,
		source:      newTrackedSource(path, &domain.FreightTable{}),
	}
}

func (r *freightRepository) Refresh(force bool) bool {
	key := fmt.Sprintf("freight:%t", force)
	result, _, _ := r.group.Do(key, func() (any, error) {
		changed, err := r.source.refresh(r.fs, force, r.load, func() *domain.FreightTable {
			return &domain.FreightTable{}
		})
		if err != nil {
			logrus.WithError(err).WithField("path", r.source.path).Warn("Falha ao recarregar tabela de frete, mantendo tabela anterior")
			return false, nil
		}
		if changed {
			logrus.WithFields(logrus.Fields{
				"path":   r.source.path,
				"points": len(r.source.snapshot().Points),
			}).Info("Tabela de frete recarregada")
		}
		return changed, nil
	})
	return result.(bool)
}

// Table retorna false quando a tabela não existe ou está vazia
func (r *freightRepository) Table() (*domain.FreightTable, bool) {
	table := r.source.snapshot()
	if table == nil || len(table.Points) == 0 {
		return nil, false
	}
	return table, true
}

func (r *freightRepository) Status() SourceStatus {
	return r.source.status()
}

func (r *freightRepository) load(info os.FileInfo) (*domain.FreightTable, error) {
	raw, err := r.reader.ReadTable(r.source.path, ',')
	if err != nil {
		return nil, err
	}

	points, err := parseFreightPoints(raw, r.desiColumn, r.priceColumn)
	if err != nil {
		return nil, err
	}

	version, err := utils.GenerateVersion()
	if err != nil {
		return nil, err
	}

	return &domain.FreightTable{
		Points:   points,
		ModTime:  info.ModTime(),
		LoadedAt: time.Now(),
		Version:  version,
	}, nil
}

// parseFreightPoints lê as colunas de desi e preço; linhas sem número válido são ignoradas
func parseFreightPoints(raw *domain.RawTable, desiColumn, priceColumn string) ([]domain.FreightPoint, error) {
	desiAt, priceAt := -1, -1
	for i, column := range raw.Columns {
		switch {
		case desiAt < 0 && strings.EqualFold(column, desiColumn):
			desiAt = i
		case priceAt < 0 && strings.EqualFold(column, priceColumn):
			priceAt = i
		}
	}
	if desiAt < 0 || priceAt < 0 {
		return nil, fmt.Errorf("%w: freight table needs columns %q and %q", domain.ErrResolution, desiColumn, priceColumn)
	}

	points := make([]domain.FreightPoint, 0, len(raw.Rows))
	for _, row := range raw.Rows {
		desi, ok := utils.ExtractNumber(raw.Cell(row, desiAt))
		if !ok {
			continue
		}
		price, ok := utils.ExtractDecimal(raw.Cell(row, priceAt))
		if !ok {
			continue
		}
		points = append(points, domain.FreightPoint{Desi: desi, Price: price})
	}
	return points, nil
}
