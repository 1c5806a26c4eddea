package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang-broker-scryper/internal/crawler"
	"golang-broker-scryper/internal/entity"
)

func TestLiveViewNoBrokers(t *testing.T) {
	svc := NewCrawlerService(&fakeBrokerRepo{}, &fakeCrawler{}, newTestLogger(t))

	_, err := svc.LiveView(context.Background(), "2330")
	assert.ErrorIs(t, err, ErrNoBrokers)
}

func TestLiveViewTotalsPerStockSummaries(t *testing.T) {
	b1 := testBroker(1, "凱基")
	b2 := testBroker(2, "美林")

	c := &fakeCrawler{
		summaries: map[string]*crawler.BrokerSummary{
			"2330|" + b1.FbsA: {Buy: 100, Sell: 40, Net: 60, Date: "2024/01/10"},
			// broker 2's summary page is unreachable
		},
	}
	svc := NewCrawlerService(&fakeBrokerRepo{brokers: []entity.Broker{b1, b2}}, c, newTestLogger(t))

	resp, err := svc.LiveView(context.Background(), "2330")
	require.NoError(t, err)

	require.Len(t, resp.BrokersData, 2)
	require.NotNil(t, resp.TotalStats)
	assert.Equal(t, 100, resp.TotalStats.Buy)
	assert.Equal(t, 40, resp.TotalStats.Sell)
	assert.Equal(t, 60, resp.TotalStats.Net)

	// broker without a summary still appears, with empty lists
	assert.Nil(t, resp.BrokersData[1].SpecificStats)
	assert.NotNil(t, resp.BrokersData[1].BuyData)
	assert.NotNil(t, resp.BrokersData[1].SellData)
}

func TestLiveViewWithoutStockNumberSkipsSummaries(t *testing.T) {
	b1 := testBroker(1, "凱基")
	svc := NewCrawlerService(&fakeBrokerRepo{brokers: []entity.Broker{b1}}, &fakeCrawler{}, newTestLogger(t))

	resp, err := svc.LiveView(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, resp.TotalStats)
	assert.Empty(t, resp.BrokersData[0].FubonLink)
	assert.NotEmpty(t, resp.BrokersData[0].FubonRankingLink)
}

func TestHistoryViewDecoratesRows(t *testing.T) {
	pages := map[string]rankingPage{
		crawler.RankingDetailLink("a1", "b1", 5): {
			buy:  []crawler.StockRow{rankingRow("2330", 120, 10)},
			sell: []crawler.StockRow{rankingRow("2603", 5, 90)},
			date: crawler.ResolvedDate{Value: "2024-01-10"},
		},
	}
	svc := NewCrawlerService(&fakeBrokerRepo{}, &fakeCrawler{pages: pages}, newTestLogger(t))

	resp, err := svc.HistoryView(context.Background(), "a1", "b1", 5, "凱基", "bno1")
	require.NoError(t, err)

	assert.Equal(t, "凱基", resp.BrokerName)
	assert.Equal(t, 5, resp.Days)
	assert.Equal(t, "2024-01-03~2024-01-10", resp.DateRange)
	require.Len(t, resp.BuyData, 1)
	assert.Equal(t, crawler.HiStockLink("2330", "bno1"), resp.BuyData[0].HistockLink)
	require.Len(t, resp.SellData, 1)
	assert.Equal(t, crawler.HiStockLink("2603", "bno1"), resp.SellData[0].HistockLink)
}

func TestMainForceViewSortsByNetDescending(t *testing.T) {
	b1 := testBroker(1, "凱基")
	b2 := testBroker(2, "美林")
	b3 := testBroker(3, "富邦")

	c := &fakeCrawler{
		summaries: map[string]*crawler.BrokerSummary{
			"2330|" + b1.FbsA: {Buy: 50, Sell: 40, Net: 10, Date: "2024/01/10"},
			"2330|" + b3.FbsA: {Buy: 300, Sell: 20, Net: 280, Date: "2024/01/10"},
			// broker 2 unreachable, skipped
		},
	}
	svc := NewCrawlerService(&fakeBrokerRepo{brokers: []entity.Broker{b1, b2, b3}}, c, newTestLogger(t))

	resp, err := svc.MainForceView(context.Background(), "2330")
	require.NoError(t, err)

	require.Len(t, resp.MainForceData, 2)
	assert.Equal(t, "富邦", resp.MainForceData[0].BrokerName)
	assert.Equal(t, 280, resp.MainForceData[0].Net)
	assert.Equal(t, "凱基", resp.MainForceData[1].BrokerName)
}

func TestStockMainForceViewEmptyOnUnreachablePage(t *testing.T) {
	svc := NewCrawlerService(&fakeBrokerRepo{}, &fakeCrawler{}, newTestLogger(t))

	resp, err := svc.StockMainForceView(context.Background(), "2330")
	require.NoError(t, err)
	assert.Equal(t, "2330", resp.StockNumber)
	assert.NotNil(t, resp.BuyList)
	assert.NotNil(t, resp.SellList)
	assert.Empty(t, resp.BuyList)
}
