package dto

import "time"

// CreateStockRecordRequest is the DTO for manually adding a record; the write
// follows the same upsert semantics as the scraper.
type CreateStockRecordRequest struct {
	BrokerID   uint   `json:"broker_id"`
	StockCode  string `json:"stock_code"`
	StockName  string `json:"stock_name"`
	Date       string `json:"date"`
	BuyVolume  int    `json:"buy_volume"`
	SellVolume int    `json:"sell_volume"`
	NetVolume  int    `json:"net_volume"`
	RecordType int    `json:"record_type"`
}

// StockRecordResponse is one stored record with its broker's display name.
type StockRecordResponse struct {
	ID         int64     `json:"id"`
	BrokerID   uint      `json:"broker_id"`
	BrokerName string    `json:"broker_name"`
	StockCode  string    `json:"stock_code"`
	StockName  string    `json:"stock_name"`
	Date       string    `json:"date"`
	BuyVolume  int       `json:"buy_volume"`
	SellVolume int       `json:"sell_volume"`
	NetVolume  int       `json:"net_volume"`
	RecordType int       `json:"record_type"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
