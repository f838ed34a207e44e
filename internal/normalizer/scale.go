package normalizer

import (
	"math"
	"sort"
)

// scaleThreshold: se o percentil 95 não passa de 1.0, a coluna está em fração
const (
	scaleQuantile  = 0.95
	scaleThreshold = 1.0
)

// Quantile calcula o quantil q com interpolação linear entre as posições vizinhas
func Quantile(values []float64, q float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	position := q * float64(len(sorted)-1)
	lower := int(math.Floor(position))
	upper := int(math.Ceil(position))
	if lower == upper {
		return sorted[lower]
	}
	return sorted[lower] + (sorted[upper]-sorted[lower])*(position-float64(lower))
}

// NormalizeScale converte a coluna para a escala 0-100 quando ela está em fração.
// Valores ausentes são ignorados. Retorna true quando a coluna foi multiplicada.
//
// Uma coluna que mistura frações e percentuais inteiros pode ser classificada
// errado; a heurística é mantida sem guarda extra.
func NormalizeScale(values []*float64) bool {
	present := make([]float64, 0, len(values))
	for _, value := range values {
		if value != nil {
			present = append(present, *value)
		}
	}
	if len(present) == 0 || Quantile(present, scaleQuantile) > scaleThreshold {
		return false
	}

	for _, value := range values {
		if value != nil {
			*value = roundScaled(*value * 100)
		}
	}
	return true
}

// roundScaled remove o resíduo binário da multiplicação (0.15*100 = 15.000000000000002)
func roundScaled(v float64) float64 {
	return math.Round(v*1e9) / 1e9
}
