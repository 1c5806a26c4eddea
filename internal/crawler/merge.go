package crawler

// Thresholds holds the net-volume cutoffs that qualify a ranking row as a
// buy-side or sell-side signal. Sell is negative.
type Thresholds struct {
	Buy  int `mapstructure:"buy"`
	Sell int `mapstructure:"sell"`
}

// DefaultThresholds applies to brokers without an entry in the condition
// table.
var DefaultThresholds = Thresholds{Buy: 60, Sell: -60}

// ThresholdTable maps broker display names to their thresholds. Lookup is by
// exact name: a renamed broker silently reverts to the default pair, which is
// a known latent risk of the name-keyed table.
type ThresholdTable struct {
	Conditions map[string]Thresholds
	Default    Thresholds
}

// NewThresholdTable builds a table; a zero-valued defaults pair falls back to
// DefaultThresholds.
func NewThresholdTable(conditions map[string]Thresholds, defaults Thresholds) ThresholdTable {
	if defaults == (Thresholds{}) {
		defaults = DefaultThresholds
	}
	return ThresholdTable{Conditions: conditions, Default: defaults}
}

// Lookup returns the thresholds for the given broker display name.
func (t ThresholdTable) Lookup(brokerName string) Thresholds {
	if th, ok := t.Conditions[brokerName]; ok {
		return th
	}
	return t.Default
}

// FilterSignals keeps the buy rows with net at or above the buy threshold and
// the sell rows with net at or below the sell threshold, preserving source
// order.
func FilterSignals(buyRows, sellRows []StockRow, th Thresholds) (buySignals, sellSignals []StockRow) {
	buySignals = make([]StockRow, 0, len(buyRows))
	for _, row := range buyRows {
		if row.Net >= th.Buy {
			buySignals = append(buySignals, row)
		}
	}

	sellSignals = make([]StockRow, 0, len(sellRows))
	for _, row := range sellRows {
		if row.Net <= th.Sell {
			sellSignals = append(sellSignals, row)
		}
	}
	return buySignals, sellSignals
}
