package dto

import (
	"golang-broker-scryper/internal/crawler"
)

// TotalStats accumulates the per-broker summary volumes of one stock across
// every tracked broker.
type TotalStats struct {
	Buy  int `json:"buy"`
	Sell int `json:"sell"`
	Net  int `json:"net"`
}

// LiveBrokerData is one broker's slice of the live ranking view: its merged
// buy/sell signals, the optional per-stock summary, and convenience links.
type LiveBrokerData struct {
	BrokerName        string                 `json:"broker_name"`
	FubonLink         string                 `json:"fubon_link"`
	FubonRankingLink  string                 `json:"fubon_ranking_link"`
	HistockLink       string                 `json:"histock_link"`
	BuyData           []crawler.StockRow     `json:"buy_data"`
	SellData          []crawler.StockRow     `json:"sell_data"`
	SpecificStats     *crawler.BrokerSummary `json:"specific_stats"`
	Date              string                 `json:"date"`
	StockBno          string                 `json:"stock_bno"`
	FbsA              string                 `json:"fbs_a"`
	FbsB              string                 `json:"fbs_b"`
}

// LiveResponse is the payload of the cross-broker live ranking view.
type LiveResponse struct {
	StockNumber string           `json:"stock_number"`
	BrokersData []LiveBrokerData `json:"brokers_data"`
	TotalStats  *TotalStats      `json:"total_stats"`
}

// HistoryResponse is the payload of the single-broker historical ranking
// view.
type HistoryResponse struct {
	BrokerName string             `json:"broker_name"`
	Date       string             `json:"date"`
	DateRange  string             `json:"date_range"`
	BuyData    []crawler.StockRow `json:"buy_data"`
	SellData   []crawler.StockRow `json:"sell_data"`
	Days       int                `json:"days"`
}

// MainForceEntry is one broker's day summary of the requested stock.
type MainForceEntry struct {
	BrokerName  string `json:"broker_name"`
	Buy         int    `json:"buy"`
	Sell        int    `json:"sell"`
	Net         int    `json:"net"`
	Date        string `json:"date"`
	FubonLink   string `json:"fubon_link"`
	HistockLink string `json:"histock_link"`
}

// MainForceResponse is the payload of the per-broker main force view, ordered
// by descending net volume.
type MainForceResponse struct {
	StockNumber   string           `json:"stock_number"`
	MainForceData []MainForceEntry `json:"main_force_data"`
}

// StockMainForceResponse is the payload of the single-stock day summary view.
type StockMainForceResponse struct {
	StockNumber string              `json:"stock_number"`
	Date        string              `json:"date"`
	BuyList     []crawler.BrokerRow `json:"buy_list"`
	SellList    []crawler.BrokerRow `json:"sell_list"`
}
