package crawler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rankingPageHTML = `<html><body>
<table id="oMainTable">
	<tr><td><div class="t11">資料日期：2024-01-10</div></td></tr>
	<tr><td>header</td></tr>
	<tr><td>
		<table>
			<tr><td>買超</td></tr>
			<tr><td>股票</td><td>買進</td><td>賣出</td><td>買賣超</td></tr>
			<tr><td><script>GenLink2stk('AS2330','台積電');</script></td><td>1,500</td><td>300</td><td>1,200</td></tr>
			<tr><td><script>GenLink2stk('AS2317','鴻海');</script></td><td>80</td><td>40</td><td>40</td></tr>
		</table>
		<table>
			<tr><td>賣超</td></tr>
			<tr><td>股票</td><td>買進</td><td>賣出</td><td>買賣超</td></tr>
			<tr><td><script>GenLink2stk('AS2412','中華電');</script></td><td>50</td><td>500</td><td>-450</td></tr>
		</table>
	</td></tr>
</table>
</body></html>`

const summaryPageHTML = `<html><body>
<div class="t11">主力進出 2024/1/10</div>
<table id="oMainTable">
	<tr><td>header</td></tr>
	<tr><td>header</td></tr>
	<tr><td>broker</td><td>3,000</td><td>1,000</td><td>2,000</td></tr>
</table>
</body></html>`

func newTestCrawler(t *testing.T) *Crawler {
	t.Helper()
	log := newTestLogger(t)
	return NewCrawler(log, NewFetcher(log, 0), NewThresholdTable(nil, Thresholds{}))
}

func serve(t *testing.T, html string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
}

func TestFetchTopBuyers(t *testing.T) {
	srv := serve(t, rankingPageHTML)
	defer srv.Close()

	c := newTestCrawler(t)
	buyRows, date, sellRows := c.FetchTopBuyers(context.Background(), srv.URL, RecordTypeDailyRanking)

	assert.Equal(t, "2024-01-10", date.Value)
	assert.False(t, date.Fallback)

	require.Len(t, buyRows, 2)
	assert.Equal(t, "2330", buyRows[0].Code)
	assert.Equal(t, "2330台積電", buyRows[0].Name)
	assert.Equal(t, 1200, buyRows[0].Net)
	assert.Equal(t, "2024-01-10", buyRows[0].Date)
	assert.Equal(t, RecordTypeDailyRanking, buyRows[0].RecordType)

	require.Len(t, sellRows, 1)
	assert.Equal(t, "2412", sellRows[0].Code)
	assert.Equal(t, -450, sellRows[0].Net)
}

func TestFetchTopBuyersUnreachableSource(t *testing.T) {
	c := newTestCrawler(t)
	buyRows, date, sellRows := c.FetchTopBuyers(context.Background(), "http://127.0.0.1:1/never", RecordTypeDailyRanking)
	assert.Empty(t, buyRows)
	assert.Empty(t, sellRows)
	assert.Empty(t, date.Value)
}

func TestFetchTopBuyersNoMainTable(t *testing.T) {
	srv := serve(t, `<html><body><p>maintenance</p></body></html>`)
	defer srv.Close()

	c := newTestCrawler(t)
	buyRows, _, sellRows := c.FetchTopBuyers(context.Background(), srv.URL, RecordTypeDailyRanking)
	assert.Empty(t, buyRows)
	assert.Empty(t, sellRows)
}

func TestMergedTopBuyersAppliesThresholds(t *testing.T) {
	srv := serve(t, rankingPageHTML)

	log := newTestLogger(t)
	c := NewCrawler(log, NewFetcher(log, 0), NewThresholdTable(nil, Thresholds{}))

	// net 40 is below the default 60 cutoff
	buySignals, date, sellSignals := c.mergedFromLink(context.Background(), srv.URL, "merged:a:b", "unknown")
	require.Len(t, buySignals, 1)
	assert.Equal(t, "2330", buySignals[0].Code)
	require.Len(t, sellSignals, 1)
	assert.Equal(t, "2412", sellSignals[0].Code)
	assert.NotEmpty(t, date.Value)

	// second call is served from cache even once the source is gone
	srv.Close()
	cachedBuy, _, cachedSell := c.mergedFromLink(context.Background(), srv.URL, "merged:a:b", "unknown")
	require.Len(t, cachedBuy, 1)
	assert.Equal(t, "2330", cachedBuy[0].Code)
	require.Len(t, cachedSell, 1)
}

func TestMergedTopBuyersDoesNotCacheFailedScrapes(t *testing.T) {
	log := newTestLogger(t)
	c := NewCrawler(log, NewFetcher(log, 0), NewThresholdTable(nil, Thresholds{}))

	buySignals, date, sellSignals := c.mergedFromLink(context.Background(), "http://127.0.0.1:1/never", "merged:a:b", "unknown")
	assert.Empty(t, buySignals)
	assert.Empty(t, sellSignals)
	assert.Empty(t, date.Value)

	// the miss is not pinned: once the page is reachable again, the next
	// call under the same key scrapes it
	srv := serve(t, rankingPageHTML)
	defer srv.Close()
	buySignals, _, _ = c.mergedFromLink(context.Background(), srv.URL, "merged:a:b", "unknown")
	require.Len(t, buySignals, 1)
	assert.Equal(t, "2330", buySignals[0].Code)
}

func TestFetchBrokerSummary(t *testing.T) {
	srv := serve(t, summaryPageHTML)
	defer srv.Close()

	c := newTestCrawler(t)
	link := srv.URL
	doc, err := c.fetcher.Fetch(context.Background(), link)
	require.NoError(t, err)
	require.NotNil(t, doc)

	summary := c.summaryFromDocument(doc)
	require.NotNil(t, summary)
	assert.Equal(t, 3000, summary.Buy)
	assert.Equal(t, 1000, summary.Sell)
	assert.Equal(t, 2000, summary.Net)
	assert.Equal(t, "2024-1-10", summary.Date)
}

func TestFetchStockMainForceNestedShape(t *testing.T) {
	srv := serve(t, nestedTableHTML)
	defer srv.Close()

	c := newTestCrawler(t)
	data := c.mainForceFromLink(context.Background(), srv.URL, "2024-01-10")
	require.NotNil(t, data)
	require.Len(t, data.BuyList, 1)
	assert.Equal(t, "BuySideBroker", data.BuyList[0].Name)
	require.Len(t, data.SellList, 1)
	assert.Equal(t, "SellSideBroker", data.SellList[0].Name)
}

func TestFetchStockMainForceFlatShape(t *testing.T) {
	srv := serve(t, "<html><body>"+flatTableHTML+"</body></html>")
	defer srv.Close()

	c := newTestCrawler(t)
	data := c.mainForceFromLink(context.Background(), srv.URL, "2024-01-10")
	require.NotNil(t, data)
	require.Len(t, data.BuyList, 1)
	assert.Equal(t, "BrokerA", data.BuyList[0].Name)
	require.Len(t, data.SellList, 1)
	assert.Equal(t, "BrokerB", data.SellList[0].Name)
}

func TestFetchStockMainForceEmptyPage(t *testing.T) {
	srv := serve(t, `<html><body><p>nothing</p></body></html>`)
	defer srv.Close()

	c := newTestCrawler(t)
	data := c.mainForceFromLink(context.Background(), srv.URL, "2024-01-10")
	require.NotNil(t, data)
	assert.Empty(t, data.BuyList)
	assert.Empty(t, data.SellList)
	assert.Equal(t, "2024-01-10", data.Date)
}
