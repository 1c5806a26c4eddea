package crawler

// RecordTypeDailyRanking tags records scraped from the daily broker ranking
// pages; other scrape types carry their own tag.
const RecordTypeDailyRanking = 1

// StockRow is one parsed row from a broker's top buyer/seller ranking page.
type StockRow struct {
	Name       string `json:"name"`
	Code       string `json:"code"`
	Buy        int    `json:"buy"`
	Sell       int    `json:"sell"`
	Net        int    `json:"dif"`
	Date       string `json:"date"`
	RecordType int    `json:"type"`

	// HistockLink is filled in by callers that decorate rows with
	// cross-reference links.
	HistockLink string `json:"histock_link,omitempty"`
}

// BrokerRow is one parsed row from a stock's main force page: a broker and its
// buy/sell/net volumes for the day.
type BrokerRow struct {
	Name    string `json:"name"`
	Buy     int    `json:"buy"`
	Sell    int    `json:"sell"`
	Net     int    `json:"net"`
	Percent string `json:"percent"`
}

// BrokerSummary is the day-level buy/sell/net summary of one stock at one
// broker, from the zco0 page.
type BrokerSummary struct {
	Buy  int    `json:"buy"`
	Sell int    `json:"sell"`
	Net  int    `json:"net"`
	Date string `json:"date"`
}

// MainForceData is the single-stock day summary: ranked buyer and seller
// brokers for one date.
type MainForceData struct {
	BuyList  []BrokerRow `json:"buy_list"`
	SellList []BrokerRow `json:"sell_list"`
	Date     string      `json:"date"`
}
