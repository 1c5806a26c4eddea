package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterSignalsDefaultThresholdBoundaries(t *testing.T) {
	buyRows := []StockRow{
		{Code: "1101", Net: 59},
		{Code: "2330", Net: 60},
	}
	sellRows := []StockRow{
		{Code: "2317", Net: -60},
		{Code: "2412", Net: -59},
	}

	buySignals, sellSignals := FilterSignals(buyRows, sellRows, DefaultThresholds)

	assert.Len(t, buySignals, 1)
	assert.Equal(t, "2330", buySignals[0].Code)
	assert.Len(t, sellSignals, 1)
	assert.Equal(t, "2317", sellSignals[0].Code)
}

func TestFilterSignalsPreservesOrder(t *testing.T) {
	buyRows := []StockRow{
		{Code: "2330", Net: 500},
		{Code: "2317", Net: 100},
		{Code: "2412", Net: 80},
	}

	buySignals, _ := FilterSignals(buyRows, nil, DefaultThresholds)
	assert.Equal(t, []string{"2330", "2317", "2412"}, []string{buySignals[0].Code, buySignals[1].Code, buySignals[2].Code})
}

func TestThresholdTableLookup(t *testing.T) {
	table := NewThresholdTable(map[string]Thresholds{
		"港商麥格理": {Buy: 300, Sell: -300},
	}, Thresholds{})

	assert.Equal(t, Thresholds{Buy: 300, Sell: -300}, table.Lookup("港商麥格理"))
	assert.Equal(t, DefaultThresholds, table.Lookup("somebody else"))
}

func TestThresholdTableExactNameMatch(t *testing.T) {
	table := NewThresholdTable(map[string]Thresholds{
		"港商麥格理": {Buy: 300, Sell: -300},
	}, Thresholds{})

	// A renamed broker reverts to the default pair; the table is keyed by
	// exact display name.
	assert.Equal(t, DefaultThresholds, table.Lookup("港商麥格理台北"))
}
