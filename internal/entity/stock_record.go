package entity

import (
	"time"
)

// StockRecord is the persisted projection of one scraped ranking row.
// Uniqueness is enforced per (broker, stock code, date, record type); writes
// go through an upsert on that key.
type StockRecord struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	BrokerID   uint      `gorm:"uniqueIndex:idx_stock_records_key" json:"broker_id"`
	StockCode  string    `gorm:"uniqueIndex:idx_stock_records_key" json:"stock_code"`
	StockName  string    `json:"stock_name"`
	Date       time.Time `gorm:"type:date;uniqueIndex:idx_stock_records_key" json:"date"`
	BuyVolume  int       `gorm:"default:0" json:"buy_volume"`
	SellVolume int       `gorm:"default:0" json:"sell_volume"`
	NetVolume  int       `gorm:"default:0" json:"net_volume"`
	RecordType int       `gorm:"default:1;uniqueIndex:idx_stock_records_key" json:"record_type"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Broker *Broker `gorm:"foreignKey:BrokerID" json:"-"`
}

func (StockRecord) TableName() string {
	return "stock_records"
}
