package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ExtractNumericToken localiza o primeiro número em um texto livre e o devolve
// com ponto como separador decimal. Aceita sinal, "%", separador de milhar e
// vírgula decimal: "%12,5" -> "12.5", "1.234,50" -> "1234.50".
func ExtractNumericToken(s string) (string, bool) {
	start := strings.IndexFunc(s, isDigit)
	if start < 0 {
		return "", false
	}

	end := start
	for end < len(s) {
		c := rune(s[end])
		if isDigit(c) {
			end++
			continue
		}
		if (c == '.' || c == ',') && end+1 < len(s) && isDigit(rune(s[end+1])) {
			end++
			continue
		}
		break
	}

	token := normalizeSeparators(s[start:end])
	if start > 0 && s[start-1] == '-' {
		token = "-" + token
	}
	return token, true
}

// ExtractNumber é ExtractNumericToken convertido para float64
func ExtractNumber(s string) (float64, bool) {
	token, ok := ExtractNumericToken(s)
	if !ok {
		return 0, false
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// ExtractDecimal é ExtractNumericToken convertido para decimal
func ExtractDecimal(s string) (decimal.Decimal, bool) {
	token, ok := ExtractNumericToken(s)
	if !ok {
		return decimal.Zero, false
	}
	value, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Zero, false
	}
	return value, true
}

// normalizeSeparators decide qual separador é o decimal.
// Com os dois presentes, o último é o decimal. Um único tipo repetido é milhar.
func normalizeSeparators(token string) string {
	dots := strings.Count(token, ".")
	commas := strings.Count(token, ",")

	switch {
	case dots > 0 && commas > 0:
		last := strings.LastIndexAny(token, ".,")
		integer := strings.NewReplacer(".", "", ",", "").Replace(token[:last])
		return integer + "." + token[last+1:]
	case dots > 1:
		return strings.ReplaceAll(token, ".", "")
	case commas > 1:
		return strings.ReplaceAll(token, ",", "")
	case commas == 1:
		return strings.Replace(token, ",", ".", 1)
	default:
		return token
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
