package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExtractNumericToken(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		found    bool
	}{
		{name: "Inteiro simples", input: "12", expected: "12", found: true},
		{name: "Percentual com vírgula decimal", input: "%12,5", expected: "12.5", found: true},
		{name: "Percentual no final", input: "18.75 %", expected: "18.75", found: true},
		{name: "Milhar com ponto e decimal com vírgula", input: "1.234,50", expected: "1234.50", found: true},
		{name: "Milhar com vírgula e decimal com ponto", input: "1,234.50", expected: "1234.50", found: true},
		{name: "Milhar repetido", input: "1.234.567", expected: "1234567", found: true},
		{name: "Texto antes do número", input: "Komisyon: 9,9", expected: "9.9", found: true},
		{name: "Sinal negativo", input: "-3,5", expected: "-3.5", found: true},
		{name: "Primeiro número vence", input: "10 - 15", expected: "10", found: true},
		{name: "Separador sem dígito depois", input: "7, sonra", expected: "7", found: true},
		{name: "Sem número", input: "yok", expected: "", found: false},
		{name: "Vazio", input: "", expected: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, found := ExtractNumericToken(tt.input)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, token)
		})
	}
}

func TestExtractNumber(t *testing.T) {
	value, ok := ExtractNumber("%0,12")
	assert.True(t, ok)
	assert.InDelta(t, 0.12, value, 1e-12)

	_, ok = ExtractNumber("-")
	assert.False(t, ok)
}

func TestExtractDecimal(t *testing.T) {
	value, ok := ExtractDecimal("1.234,56 TL")
	assert.True(t, ok)
	assert.True(t, decimal.RequireFromString("1234.56").Equal(value))
}
