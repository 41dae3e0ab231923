//nolint:depguard
package utils_test

import (
	"bytes"
	"strings"
	"testing"

	"fingenius/src/data"
	"fingenius/src/models"
	"fingenius/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHoldingsFrame(t *testing.T) {
	df, err := utils.HoldingsFrame(data.Holdings)
	require.NoError(t, err)

	assert.Equal(t, len(data.Holdings), df.Nrow())
	assert.Contains(t, df.Names(), "current_value")
	assert.Contains(t, df.Names(), "sector")
}

func TestSectorTotals(t *testing.T) {
	totals, err := utils.SectorTotals(data.Holdings)
	require.NoError(t, err)
	require.Len(t, totals, 3)

	assert.Equal(t, "ETF", totals[0].Sector)
	assert.InDelta(t, 49100, totals[0].Value, 1e-9)
	assert.Equal(t, "Technology", totals[1].Sector)
	assert.InDelta(t, 31062.5, totals[1].Value, 1e-9)
	assert.InDelta(t, 26.5, totals[1].Allocation, 1e-9)
	assert.Equal(t, "Bonds", totals[2].Sector)
}

func TestSectorTotalsTieBreaksByName(t *testing.T) {
	holdings := []models.Holding{
		{ID: "1", Symbol: "B", Sector: "Beta", CurrentValue: 100, Allocation: 50},
		{ID: "2", Symbol: "A", Sector: "Alpha", CurrentValue: 100, Allocation: 50},
	}
	totals, err := utils.SectorTotals(holdings)
	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, "Alpha", totals[0].Sector)
	assert.Equal(t, "Beta", totals[1].Sector)
}

func TestSectorTotalsEmpty(t *testing.T) {
	totals, err := utils.SectorTotals(nil)
	require.NoError(t, err)
	assert.Empty(t, totals)
}

func TestWriteHoldingsCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, utils.WriteHoldingsCSV(&buf, data.Holdings))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(data.Holdings)+1)
	assert.Contains(t, lines[0], "symbol")
	assert.Contains(t, buf.String(), "Vanguard Total Bond Market ETF")

	buf.Reset()
	require.NoError(t, utils.WriteHoldingsCSV(&buf, nil))
	assert.Equal(t, "id,symbol,name,quantity,current_price,current_value,change_percent,allocation,sector\n", buf.String())
}
