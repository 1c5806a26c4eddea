package repository

import (
	"context"
	"errors"
	"time"

	"golang-broker-scryper/internal/entity"

	"gorm.io/gorm"
)

// StockRecordStat is one aggregate row: volumes summed per stock across all
// brokers and dates.
type StockRecordStat struct {
	StockCode string `json:"stock_code"`
	StockName string `json:"stock_name"`
	TotalBuy  int64  `json:"total_buy"`
	TotalSell int64  `json:"total_sell"`
	TotalNet  int64  `json:"total_net"`
}

// StockRecordRepository persists normalized scrape records.
type StockRecordRepository interface {
	// Upsert creates or updates the record identified by
	// (broker, stock code, date, record type); it reports whether a new row
	// was created.
	Upsert(ctx context.Context, record *entity.StockRecord) (created bool, err error)
	FindByDate(ctx context.Context, date time.Time) ([]entity.StockRecord, error)
	AggregateStats(ctx context.Context) ([]StockRecordStat, error)
}

type stockRecordRepository struct {
	db *gorm.DB
}

// NewStockRecordRepository creates a new StockRecordRepository.
func NewStockRecordRepository(db *gorm.DB) StockRecordRepository {
	return &stockRecordRepository{db: db}
}

func (r *stockRecordRepository) Upsert(ctx context.Context, record *entity.StockRecord) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.StockRecord
		err := tx.Where(
			"broker_id = ? AND stock_code = ? AND date = ? AND record_type = ?",
			record.BrokerID, record.StockCode, record.Date, record.RecordType,
		).First(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(record).Error
		}
		if err != nil {
			return err
		}

		return tx.Model(&existing).Updates(map[string]interface{}{
			"stock_name":  record.StockName,
			"buy_volume":  record.BuyVolume,
			"sell_volume": record.SellVolume,
			"net_volume":  record.NetVolume,
		}).Error
	})
	return created, err
}

func (r *stockRecordRepository) FindByDate(ctx context.Context, date time.Time) ([]entity.StockRecord, error) {
	var records []entity.StockRecord
	err := r.db.WithContext(ctx).
		Preload("Broker").
		Where("date = ?", date).
		Order("net_volume DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *stockRecordRepository) AggregateStats(ctx context.Context) ([]StockRecordStat, error) {
	var stats []StockRecordStat
	err := r.db.WithContext(ctx).Raw(`
		SELECT stock_code,
		       stock_name,
		       SUM(buy_volume)  AS total_buy,
		       SUM(sell_volume) AS total_sell,
		       SUM(net_volume)  AS total_net
		FROM stock_records
		GROUP BY stock_code, stock_name
		ORDER BY total_net DESC`).Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}
