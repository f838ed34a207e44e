package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DesiRequest é a entrada do cálculo de desi. DesiFactor ausente usa o fator configurado;
// RatePerDesi informado pede também a estimativa de custo.
type DesiRequest struct {
	Width       float64  `json:"width"`
	Height      float64  `json:"height"`
	Length      float64  `json:"length"`
	DesiFactor  *float64 `json:"desiFactor,omitempty"`
	RatePerDesi *float64 `json:"ratePerDesi,omitempty"`
}

type DesiResult struct {
	Width            float64 `json:"width"`
	Height           float64 `json:"height"`
	Length           float64 `json:"length"`
	VolumeCm3        float64 `json:"volumeCm3"`
	VolumeM3         float64 `json:"volumeM3"`
	Desi             float64 `json:"desi"`
	VolumetricWeight float64 `json:"volumetricWeight"`
	DesiFactor       float64 `json:"desiFactor"`

	EstimatedCost *decimal.Decimal `json:"estimatedCost,omitempty"`
}

// FreightPoint é uma linha da tabela de preço por desi
type FreightPoint struct {
	Desi  float64         `json:"desi"`
	Price decimal.Decimal `json:"price"`
}

// FreightTable é o snapshot imutável da tabela de frete
type FreightTable struct {
	Points   []FreightPoint
	ModTime  time.Time
	LoadedAt time.Time
	Version  string
}

type FreightQuote struct {
	DesiValue      float64         `json:"desiValue"`
	ClosestDesi    float64         `json:"closestDesi"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"priceFormatted"`
}

// ServiceType é o tipo de serviço da transportadora
type ServiceType string

const (
	ServiceStandard ServiceType = "standard"
	ServiceFast     ServiceType = "fast"
	ServiceNextDay  ServiceType = "next_day"
	ServiceSameDay  ServiceType = "same_day"
)

// RegionType é a distância entre origem e destino
type RegionType string

const (
	RegionSameCity   RegionType = "same_city"
	RegionNearbyCity RegionType = "nearby_city"
	RegionFarCity    RegionType = "far_city"
	RegionRemoteArea RegionType = "remote_area"
)

// WeightType indica qual peso definiu o valor cobrado
type WeightType string

const (
	WeightActual WeightType = "actual"
	WeightDesi   WeightType = "desi"
)

type CargoRequest struct {
	ActualWeight float64     `json:"actualWeight"`
	Width        float64     `json:"width"`
	Height       float64     `json:"height"`
	Length       float64     `json:"length"`
	DesiFactor   *float64    `json:"desiFactor,omitempty"`
	ServiceType  ServiceType `json:"serviceType"`
	RegionType   RegionType  `json:"regionType"`
}

type PriceBreakdown struct {
	BasePrice  decimal.Decimal `json:"basePrice"`
	ServiceFee decimal.Decimal `json:"serviceFee"`
	RegionFee  decimal.Decimal `json:"regionFee"`
	Total      decimal.Decimal `json:"total"`
}

type CargoResult struct {
	ActualWeight      float64         `json:"actualWeight"`
	Width             float64         `json:"width"`
	Height            float64         `json:"height"`
	Length            float64         `json:"length"`
	DesiFactor        float64         `json:"desiFactor"`
	ServiceType       ServiceType     `json:"serviceType"`
	RegionType        RegionType      `json:"regionType"`
	VolumeCm3         float64         `json:"volumeCm3"`
	VolumeM3          float64         `json:"volumeM3"`
	DesiWeight        float64         `json:"desiWeight"`
	BillableWeight    float64         `json:"billableWeight"`
	UsedWeightType    WeightType      `json:"usedWeightType"`
	BasePrice         decimal.Decimal `json:"basePrice"`
	ServiceMultiplier decimal.Decimal `json:"serviceMultiplier"`
	RegionMultiplier  decimal.Decimal `json:"regionMultiplier"`
	TotalPrice        decimal.Decimal `json:"totalPrice"`
	Breakdown         PriceBreakdown  `json:"priceBreakdown"`
}
