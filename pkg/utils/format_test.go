package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12,50%", FormatPercent(12.5))
	assert.Equal(t, "0,00%", FormatPercent(0))
	assert.Equal(t, "20,00%", FormatPercent(19.999))
}

func TestFormatLira(t *testing.T) {
	assert.Equal(t, "12,50 TL", FormatLira(decimal.RequireFromString("12.5")))
	assert.Equal(t, "1234,00 TL", FormatLira(decimal.NewFromInt(1234)))
}
