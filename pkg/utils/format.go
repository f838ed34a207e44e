package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatPercent formata no padrão turco: 12.5 -> "12,50%"
func FormatPercent(value float64) string {
	return strings.Replace(strconv.FormatFloat(value, 'f', 2, 64), ".", ",", 1) + "%"
}

// FormatLira formata valores em TL: 12.5 -> "12,50 TL"
func FormatLira(value decimal.Decimal) string {
	return strings.Replace(value.StringFixed(2), ".", ",", 1) + " TL"
}
