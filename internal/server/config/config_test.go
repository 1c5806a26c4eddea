package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-broker-scryper/internal/crawler"
)

func TestLoadDecodesBrokerThresholds(t *testing.T) {
	raw := `
app:
  name: broker-ranking-server

crawler:
  max_request_per_minute: 30
  stats_cache_ttl: 5m
  default_thresholds:
    buy: 60
    sell: -60
  broker_conditions:
    港商麥格理:
      buy: 300
      sell: -300

scheduler:
  fetch_crons:
    - "0 10 * * *"
    - "0 15 * * *"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Crawler.MaxRequestPerMinute)
	assert.Equal(t, crawler.Thresholds{Buy: 60, Sell: -60}, cfg.Crawler.DefaultThresholds)

	require.Contains(t, cfg.Crawler.BrokerConditions, "港商麥格理")
	assert.Equal(t, crawler.Thresholds{Buy: 300, Sell: -300}, cfg.Crawler.BrokerConditions["港商麥格理"])

	// the decoded conditions must survive into the lookup table
	table := crawler.NewThresholdTable(cfg.Crawler.BrokerConditions, cfg.Crawler.DefaultThresholds)
	assert.Equal(t, crawler.Thresholds{Buy: 300, Sell: -300}, table.Lookup("港商麥格理"))
	assert.Equal(t, crawler.Thresholds{Buy: 60, Sell: -60}, table.Lookup("凱基"))

	assert.Equal(t, []string{"0 10 * * *", "0 15 * * *"}, cfg.Scheduler.FetchCrons)
}
