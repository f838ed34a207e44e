package domain

import "github.com/shopspring/decimal"

// ProfitParams são os dados de uma venda para o cálculo de comissão e lucro.
// Percentuais em escala 0-100; preços já com KDV incluído.
type ProfitParams struct {
	Marketplace         string          `json:"marketplace"`
	SalePrice           decimal.Decimal `json:"salePrice"`
	BuyPrice            decimal.Decimal `json:"buyPrice"`
	CargoPrice          decimal.Decimal `json:"cargoPrice"`
	VatPercent          decimal.Decimal `json:"vatPercent"`
	CommissionPercent   decimal.Decimal `json:"commissionPercent"`
	ServicePercent      decimal.Decimal `json:"servicePercent"`
	ExportPercent       decimal.Decimal `json:"exportPercent"`
	IncludeVatDeduction bool            `json:"includeVatDeduction"`
}

type ProfitResult struct {
	Marketplace       string          `json:"marketplace"`
	Payout            decimal.Decimal `json:"payout"`
	NetProfit         decimal.Decimal `json:"netProfit"`
	ProfitMargin      decimal.Decimal `json:"profitMargin"`
	NetMargin         decimal.Decimal `json:"netMargin"`
	DetailedProfitNet decimal.Decimal `json:"detailedProfitNet"`

	CommissionAmount decimal.Decimal `json:"commissionAmount"`
	ServiceAmount    decimal.Decimal `json:"serviceAmount"`
	ExportAmount     decimal.Decimal `json:"exportAmount"`
	CargoDeduction   decimal.Decimal `json:"cargoDeduction"`

	SaleVat    decimal.Decimal `json:"saleVat"`
	BuyVat     decimal.Decimal `json:"buyVat"`
	CommVat    decimal.Decimal `json:"commVat"`
	ServVat    decimal.Decimal `json:"servVat"`
	ExpVat     decimal.Decimal `json:"expVat"`
	InputVat   decimal.Decimal `json:"inputVat"`
	PayableVat decimal.Decimal `json:"vatPayable"`

	Params ProfitParams `json:"params"`
	Error  string       `json:"error,omitempty"`
}
