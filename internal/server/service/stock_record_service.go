package service

import (
	"context"
	"encoding/json"
	"time"

	"golang-broker-scryper/internal/entity"
	"golang-broker-scryper/internal/server/dto"
	"golang-broker-scryper/internal/server/repository"
	"golang-broker-scryper/pkg/logger"
	"golang-broker-scryper/pkg/redis"
)

const statsCacheKey = "stock_records:stats"

// StockRecordService serves the persisted record views.
type StockRecordService interface {
	Create(ctx context.Context, req *dto.CreateStockRecordRequest) (created bool, err error)
	GetByDate(ctx context.Context, date time.Time) ([]dto.StockRecordResponse, error)
	GetStats(ctx context.Context) ([]repository.StockRecordStat, error)
}

type stockRecordService struct {
	recordRepo    repository.StockRecordRepository
	cache         *redis.Client
	statsCacheTTL time.Duration
	log           *logger.Logger
}

// NewStockRecordService creates a new StockRecordService. The stats aggregate
// is cached in Redis for the given TTL; a nil cache disables caching.
func NewStockRecordService(recordRepo repository.StockRecordRepository, cache *redis.Client, statsCacheTTL time.Duration, log *logger.Logger) StockRecordService {
	return &stockRecordService{
		recordRepo:    recordRepo,
		cache:         cache,
		statsCacheTTL: statsCacheTTL,
		log:           log,
	}
}

func (s *stockRecordService) Create(ctx context.Context, req *dto.CreateStockRecordRequest) (bool, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return false, err
	}
	recordType := req.RecordType
	if recordType == 0 {
		recordType = 1
	}

	record := &entity.StockRecord{
		BrokerID:   req.BrokerID,
		StockCode:  req.StockCode,
		StockName:  req.StockName,
		Date:       date,
		BuyVolume:  req.BuyVolume,
		SellVolume: req.SellVolume,
		NetVolume:  req.NetVolume,
		RecordType: recordType,
	}
	created, err := s.recordRepo.Upsert(ctx, record)
	if err != nil {
		return false, err
	}
	s.invalidateStats(ctx)
	return created, nil
}

func (s *stockRecordService) GetByDate(ctx context.Context, date time.Time) ([]dto.StockRecordResponse, error) {
	records, err := s.recordRepo.FindByDate(ctx, date)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.StockRecordResponse, 0, len(records))
	for _, r := range records {
		item := dto.StockRecordResponse{
			ID:         r.ID,
			BrokerID:   r.BrokerID,
			StockCode:  r.StockCode,
			StockName:  r.StockName,
			Date:       r.Date.Format("2006-01-02"),
			BuyVolume:  r.BuyVolume,
			SellVolume: r.SellVolume,
			NetVolume:  r.NetVolume,
			RecordType: r.RecordType,
			CreatedAt:  r.CreatedAt,
			UpdatedAt:  r.UpdatedAt,
		}
		if r.Broker != nil {
			item.BrokerName = r.Broker.Name
		}
		resp = append(resp, item)
	}
	return resp, nil
}

// GetStats returns the cross-broker aggregate per stock, served from Redis
// when a fresh copy exists.
func (s *stockRecordService) GetStats(ctx context.Context) ([]repository.StockRecordStat, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, statsCacheKey).Result(); err == nil {
			var stats []repository.StockRecordStat
			if err := json.Unmarshal([]byte(cached), &stats); err == nil {
				return stats, nil
			}
		}
	}

	stats, err := s.recordRepo.AggregateStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(stats); err == nil {
			if err := s.cache.Set(ctx, statsCacheKey, payload, s.statsCacheTTL).Err(); err != nil {
				s.log.Warn("Failed to cache record stats", logger.ErrorField(err))
			}
		}
	}
	return stats, nil
}

func (s *stockRecordService) invalidateStats(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsCacheKey).Err(); err != nil {
		s.log.Warn("Failed to invalidate stats cache", logger.ErrorField(err))
	}
}
