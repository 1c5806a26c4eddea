package crawler

import (
	"context"
	"fmt"
	"time"

	"golang-broker-scryper/pkg/logger"
	"golang-broker-scryper/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/patrickmn/go-cache"
)

// Crawler scrapes the source's ranking and summary pages into normalized
// rows. Transport failures and structural misses degrade to empty results;
// only the caller's own bad input surfaces as an error.
type Crawler struct {
	fetcher    *Fetcher
	log        *logger.Logger
	thresholds ThresholdTable
	liveCache  *cache.Cache
}

// NewCrawler creates a Crawler. Merged live scrapes are cached briefly so
// repeated live-view requests do not hammer the source.
func NewCrawler(log *logger.Logger, fetcher *Fetcher, thresholds ThresholdTable) *Crawler {
	return &Crawler{
		fetcher:    fetcher,
		log:        log,
		thresholds: thresholds,
		liveCache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

// FetchTopBuyers scrapes one broker ranking page (zgb0) into buy-side and
// sell-side rows plus the page's as-of date. Any failure yields empty rows.
func (c *Crawler) FetchTopBuyers(ctx context.Context, link string, recordType int) (buyRows []StockRow, date ResolvedDate, sellRows []StockRow) {
	doc, err := c.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil, ResolvedDate{}, nil
	}

	table := doc.Find("table#oMainTable").First()
	if table.Length() == 0 {
		return nil, ResolvedDate{}, nil
	}

	date = resolveRankingDate(table)
	if date.Fallback {
		c.log.Warn("Data date label missing, using current date",
			logger.StringField("url", link), logger.StringField("date", date.Value))
	}

	buySide, sellSide := locateRankingSides(table)
	buyRows = extractStockRows(buySide)
	sellRows = extractStockRows(sellSide)

	for i := range buyRows {
		buyRows[i].Date = date.Value
		buyRows[i].RecordType = recordType
	}
	for i := range sellRows {
		sellRows[i].Date = date.Value
		sellRows[i].RecordType = recordType
	}
	return buyRows, date, sellRows
}

type mergedResult struct {
	Buy  []StockRow
	Date ResolvedDate
	Sell []StockRow
}

// MergedTopBuyers scrapes the broker's daily ranking page and keeps only the
// rows that clear the broker's thresholds. Results are cached per token pair.
func (c *Crawler) MergedTopBuyers(ctx context.Context, a, b, brokerName string) (buySignals []StockRow, date ResolvedDate, sellSignals []StockRow) {
	link := RankingDetailLink(a, b, 1)
	key := fmt.Sprintf("merged:%s:%s", a, b)
	return c.mergedFromLink(ctx, link, key, brokerName)
}

func (c *Crawler) mergedFromLink(ctx context.Context, link, key, brokerName string) (buySignals []StockRow, date ResolvedDate, sellSignals []StockRow) {
	if cached, found := c.liveCache.Get(key); found {
		result := cached.(mergedResult)
		return result.Buy, result.Date, result.Sell
	}

	buyRows, date, sellRows := c.FetchTopBuyers(ctx, link, RecordTypeDailyRanking)

	th := c.thresholds.Lookup(brokerName)
	buySignals, sellSignals = FilterSignals(buyRows, sellRows, th)

	// A failed scrape has no rows and no date. Caching it would pin empty
	// live views for the whole TTL after one transient upstream error.
	if date.Value != "" {
		c.liveCache.Set(key, mergedResult{Buy: buySignals, Date: date, Sell: sellSignals}, cache.DefaultExpiration)
	}
	return buySignals, date, sellSignals
}

// FetchBrokerSummary scrapes the day-level buy/sell/net totals of one stock
// at one broker (zco0). A missing table yields zero volumes with the resolved
// date; a failed fetch yields nil.
func (c *Crawler) FetchBrokerSummary(ctx context.Context, stockNo, a, b string) *BrokerSummary {
	link := RankingLink(stockNo, a, b)
	doc, err := c.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil
	}
	return c.summaryFromDocument(doc)
}

func (c *Crawler) summaryFromDocument(doc *goquery.Document) *BrokerSummary {
	date := resolveSummaryDate(doc)
	summary := &BrokerSummary{Date: date.Value}

	table := doc.Find("table#oMainTable").First()
	if table.Length() == 0 {
		return summary
	}

	rows := table.Find("tr")
	if rows.Length() <= 2 {
		return summary
	}

	// The third row carries the summarized volumes for the broker/stock pair.
	tds := rows.Eq(2).Find("td")
	if tds.Length() < 4 {
		return summary
	}

	buy, errBuy := parseVolume(tds.Eq(1).Text())
	sell, errSell := parseVolume(tds.Eq(2).Text())
	net, errNet := parseVolume(tds.Eq(3).Text())
	if errBuy != nil || errSell != nil || errNet != nil {
		return summary
	}

	summary.Buy = buy
	summary.Sell = sell
	summary.Net = net
	return summary
}

// FetchStockMainForce scrapes the single-stock main force day summary (zco):
// ranked buyer and seller brokers for one date. An empty dateStr means today.
func (c *Crawler) FetchStockMainForce(ctx context.Context, stockNo, dateStr string) *MainForceData {
	if dateStr == "" {
		dateStr = utils.TimeNowTaipei().Format("2006-01-02")
	}
	return c.mainForceFromLink(ctx, StockMainForceLink(stockNo, dateStr), dateStr)
}

func (c *Crawler) mainForceFromLink(ctx context.Context, link, dateStr string) *MainForceData {
	doc, err := c.fetcher.Fetch(ctx, link)
	if err != nil {
		return nil
	}

	date := dateStr
	if resolved := resolveSummaryDate(doc); !resolved.Fallback {
		date = resolved.Value
	}

	result := &MainForceData{BuyList: []BrokerRow{}, SellList: []BrokerRow{}, Date: date}

	table := findMainTable(doc)
	if table == nil || table.Length() == 0 {
		return result
	}

	// Flat ten-column layout first; nested sub-tables only when the flat
	// extraction finds no rows on either side.
	if classifyTable(table) == ShapeFlatTenColumn {
		result.BuyList, result.SellList = extractFlat(table)
	}
	if len(result.BuyList) == 0 && len(result.SellList) == 0 {
		subs := findNestedSubTables(table)
		switch {
		case len(subs) >= 2:
			result.BuyList = extractNested(subs[0])
			result.SellList = extractNested(subs[1])
		case len(subs) == 1:
			result.BuyList = extractNested(subs[0])
		}
	}

	if result.BuyList == nil {
		result.BuyList = []BrokerRow{}
	}
	if result.SellList == nil {
		result.SellList = []BrokerRow{}
	}
	return result
}
