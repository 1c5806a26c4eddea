package entity

import (
	"time"

	"gorm.io/gorm"
)

// Broker is a tracked brokerage. FbsA and FbsB are the opaque source tokens
// used to build ranking URLs; StockBno addresses the cross-reference site.
// Reference data, maintained via configuration, never by the scraper.
type Broker struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"uniqueIndex;not null" json:"name"`
	FbsA      string         `gorm:"not null" json:"fbs_a"`
	FbsB      string         `gorm:"not null" json:"fbs_b"`
	StockBno  string         `gorm:"not null" json:"stock_bno"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Broker) TableName() string {
	return "brokers"
}
