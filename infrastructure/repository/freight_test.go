package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/commission-engine/infrastructure/datasource"
	"github.com/vfg2006/commission-engine/internal/domain"
)

const freightPath = "/data/hepsijet_desi.csv"

func TestFreightRepository_Refresh(t *testing.T) {
	fs := afero.NewMemMapFs()
	repo := NewFreightRepository(fs, datasource.NewReader(fs), freightPath, "desi", "hepsijet_try")

	_, ok := repo.Table()
	assert.False(t, ok)

	writeSource(t, fs, freightPath, "DESI,HEPSIJET_TRY\n1,\"45,90\"\n2,52.10\nx,10\n5,\n", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	assert.True(t, repo.Refresh(false))

	table, ok := repo.Table()
	require.True(t, ok)
	require.Len(t, table.Points, 2)
	assert.Equal(t, 1.0, table.Points[0].Desi)
	assert.True(t, decimal.RequireFromString("45.90").Equal(table.Points[0].Price))
	assert.Equal(t, 2.0, table.Points[1].Desi)

	assert.False(t, repo.Refresh(false))
	assert.True(t, repo.Status().Exists)
}

func TestParseFreightPoints_MissingColumn(t *testing.T) {
	raw := &domain.RawTable{
		Columns: []string{"desi", "price"},
		Rows:    [][]string{{"1", "10"}},
	}

	_, err := parseFreightPoints(raw, "desi", "hepsijet_try")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrResolution))
}
