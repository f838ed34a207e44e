package shipping

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/commission-engine/infrastructure/repository"
	"github.com/vfg2006/commission-engine/internal/config"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
	"github.com/vfg2006/commission-engine/pkg/utils"
)

const defaultDesiFactor = 3000

type Calculator interface {
	CalculateDesi(request domain.DesiRequest) (*domain.DesiResult, error)
	CalculateFreight(desi float64) (*domain.FreightQuote, error)
	CalculateCargo(request domain.CargoRequest) (*domain.CargoResult, error)
	EstimateShippingCost(desi, ratePerDesi float64) decimal.Decimal
	CommonDesiFactors() map[string]float64
	ServiceTypes() []Option
	RegionTypes() []Option
}

type Service struct {
	freightRepository repository.FreightRepository
	defaultDesiFactor float64
}

func NewService(freightRepository repository.FreightRepository, cfg *config.Config) Calculator {
	factor := cfg.Calculation.DefaultDesiFactor
	if factor <= 0 {
		factor = defaultDesiFactor
	}

	return &Service{
		freightRepository: freightRepository,
		defaultDesiFactor: factor,
	}
}

// CalculateDesi: desi = largura*altura*comprimento/fator. Sem fator usa o padrão configurado.
func (s *Service) CalculateDesi(request domain.DesiRequest) (*domain.DesiResult, error) {
	factor, err := s.factor(request.DesiFactor)
	if err != nil {
		return nil, err
	}

	volume, err := volumeOf(request.Width, request.Height, request.Length)
	if err != nil {
		return nil, err
	}

	var estimatedCost *decimal.Decimal
	if request.RatePerDesi != nil {
		rate := *request.RatePerDesi
		if !(rate > 0) {
			return nil, NewShippingError(ErrNonPositiveRate, apiErrors.ErrInvalidValue, "")
		}
		cost := s.EstimateShippingCost(volume/factor, rate)
		estimatedCost = &cost
	}

	desi := volume / factor
	return &domain.DesiResult{
		Width:            request.Width,
		Height:           request.Height,
		Length:           request.Length,
		VolumeCm3:        volume,
		VolumeM3:         volume / 1_000_000,
		Desi:             desi,
		VolumetricWeight: desi,
		DesiFactor:       factor,
		EstimatedCost:    estimatedCost,
	}, nil
}

// CalculateFreight busca na tabela o ponto de desi mais próximo; em empate vale o primeiro
func (s *Service) CalculateFreight(desi float64) (*domain.FreightQuote, error) {
	if desi <= 0 || math.IsNaN(desi) {
		return nil, NewShippingError(ErrNonPositiveDesi, apiErrors.ErrInvalidValue, "")
	}

	table, ok := s.freightRepository.Table()
	if !ok {
		return nil, NewShippingError(ErrFreightTableMissing, apiErrors.ErrSourceUnavailable, s.freightRepository.Status().Path)
	}

	closest := table.Points[0]
	for _, point := range table.Points[1:] {
		if math.Abs(point.Desi-desi) < math.Abs(closest.Desi-desi) {
			closest = point
		}
	}

	return &domain.FreightQuote{
		DesiValue:      desi,
		ClosestDesi:    closest.Desi,
		Price:          closest.Price,
		PriceFormatted: utils.FormatLira(closest.Price),
	}, nil
}

// EstimateShippingCost = round(desi * taxa, 2); valores não positivos dão zero
func (s *Service) EstimateShippingCost(desi, ratePerDesi float64) decimal.Decimal {
	if ratePerDesi == 0 {
		ratePerDesi = defaultRatePerDesi
	}
	if desi <= 0 || ratePerDesi <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(desi).Mul(decimal.NewFromFloat(ratePerDesi)).Round(2)
}

func (s *Service) CommonDesiFactors() map[string]float64 {
	factors := make(map[string]float64, len(commonDesiFactors))
	for carrier, factor := range commonDesiFactors {
		factors[carrier] = factor
	}
	return factors
}

func (s *Service) ServiceTypes() []Option {
	return append([]Option(nil), serviceTypeOptions...)
}

func (s *Service) RegionTypes() []Option {
	return append([]Option(nil), regionTypeOptions...)
}

// factor: nil usa o padrão; qualquer valor informado precisa ser positivo
func (s *Service) factor(requested *float64) (float64, error) {
	if requested == nil {
		return s.defaultDesiFactor, nil
	}
	if !(*requested > 0) {
		return 0, NewShippingError(ErrNonPositiveFactor, apiErrors.ErrInvalidValue, "")
	}
	return *requested, nil
}

func volumeOf(width, height, length float64) (float64, error) {
	if !(width > 0 && height > 0 && length > 0) {
		return 0, NewShippingError(ErrNonPositiveDimension, apiErrors.ErrInvalidValue, "")
	}
	return width * height * length, nil
}
