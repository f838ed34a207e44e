package shipping

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/commission-engine/internal/domain"
	"github.com/vfg2006/commission-engine/pkg/apiErrors"
)

// CalculateCargo calcula o frete pelo peso cobrado: o maior entre o peso real e o
// peso de desi, com mínimo de 0,5 kg. Serviço e região multiplicam o preço base.
func (s *Service) CalculateCargo(request domain.CargoRequest) (*domain.CargoResult, error) {
	if !(request.ActualWeight > 0) {
		return nil, NewShippingError(ErrNonPositiveWeight, apiErrors.ErrInvalidValue, "")
	}

	serviceType := request.ServiceType
	if serviceType == "" {
		serviceType = domain.ServiceStandard
	}
	serviceMultiplier, ok := serviceMultipliers[serviceType]
	if !ok {
		return nil, NewShippingError(ErrInvalidServiceType, apiErrors.ErrInvalidValue, string(serviceType))
	}

	regionType := request.RegionType
	if regionType == "" {
		regionType = domain.RegionSameCity
	}
	regionMultiplier, ok := regionMultipliers[regionType]
	if !ok {
		return nil, NewShippingError(ErrInvalidRegionType, apiErrors.ErrInvalidValue, string(regionType))
	}

	factor, err := s.factor(request.DesiFactor)
	if err != nil {
		return nil, err
	}
	volume, err := volumeOf(request.Width, request.Height, request.Length)
	if err != nil {
		return nil, err
	}
	desiWeight := volume / factor

	billableWeight, usedWeightType := request.ActualWeight, domain.WeightActual
	if desiWeight > request.ActualWeight {
		billableWeight, usedWeightType = desiWeight, domain.WeightDesi
	}
	billableWeight = max(billableWeight, minimumBillableWeight)

	base := basePrice(billableWeight)
	total := base.Mul(serviceMultiplier).Mul(regionMultiplier)

	one := decimal.NewFromInt(1)
	breakdown := domain.PriceBreakdown{
		BasePrice:  base.Round(2),
		ServiceFee: base.Mul(serviceMultiplier.Sub(one)).Round(2),
		RegionFee:  base.Mul(serviceMultiplier).Mul(regionMultiplier.Sub(one)).Round(2),
		Total:      total.Round(2),
	}

	return &domain.CargoResult{
		ActualWeight:      request.ActualWeight,
		Width:             request.Width,
		Height:            request.Height,
		Length:            request.Length,
		DesiFactor:        factor,
		ServiceType:       serviceType,
		RegionType:        regionType,
		VolumeCm3:         volume,
		VolumeM3:          volume / 1_000_000,
		DesiWeight:        desiWeight,
		BillableWeight:    billableWeight,
		UsedWeightType:    usedWeightType,
		BasePrice:         base.Round(2),
		ServiceMultiplier: serviceMultiplier,
		RegionMultiplier:  regionMultiplier,
		TotalPrice:        total.Round(2),
		Breakdown:         breakdown,
	}, nil
}
