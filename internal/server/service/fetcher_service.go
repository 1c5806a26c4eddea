package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"golang-broker-scryper/internal/crawler"
	"golang-broker-scryper/internal/entity"
	"golang-broker-scryper/internal/server/repository"
	"golang-broker-scryper/pkg/logger"
	"golang-broker-scryper/pkg/telegram"
	"golang-broker-scryper/pkg/utils"
)

// FetcherService runs the fetch-and-store pass over every tracked broker.
type FetcherService interface {
	FetchAndStoreAll(ctx context.Context) (*entity.FetchRun, error)
}

type fetcherService struct {
	brokerRepo repository.BrokerRepository
	recordRepo repository.StockRecordRepository
	runRepo    repository.FetchRunRepository
	crawler    RankingCrawler
	notifier   telegram.Notifier
	log        *logger.Logger
}

// NewFetcherService creates a new FetcherService.
func NewFetcherService(
	brokerRepo repository.BrokerRepository,
	recordRepo repository.StockRecordRepository,
	runRepo repository.FetchRunRepository,
	c RankingCrawler,
	notifier telegram.Notifier,
	log *logger.Logger,
) FetcherService {
	return &fetcherService{
		brokerRepo: brokerRepo,
		recordRepo: recordRepo,
		runRepo:    runRepo,
		crawler:    c,
		notifier:   notifier,
		log:        log,
	}
}

// FetchAndStoreAll scrapes each tracked broker's one-day ranking and upserts
// the rows. One broker failing does not stop the pass; its error lands in the
// run summary instead.
func (s *fetcherService) FetchAndStoreAll(ctx context.Context) (*entity.FetchRun, error) {
	brokers, err := s.brokerRepo.GetBrokers(ctx)
	if err != nil {
		return nil, err
	}
	if len(brokers) == 0 {
		s.log.Warn("No brokers to fetch")
		return nil, ErrNoBrokers
	}

	run := &entity.FetchRun{
		Status:    entity.FetchRunStatusRunning,
		StartedAt: utils.TimeNowTaipei(),
	}
	if err := s.runRepo.Create(ctx, run); err != nil {
		return nil, err
	}

	results := make([]telegram.BrokerRunResult, 0, len(brokers))
	totalCreated, totalUpdated, failed := 0, 0, 0

	for _, broker := range brokers {
		result := s.fetchBroker(ctx, &broker)
		if result.Err != "" {
			failed++
			s.log.Error("Broker fetch failed",
				logger.StringField("broker", broker.Name), logger.StringField("error", result.Err))
		} else {
			totalCreated += result.Created
			totalUpdated += result.Updated
		}
		results = append(results, result)
	}

	run.Status = entity.FetchRunStatusCompleted
	if failed == len(brokers) {
		run.Status = entity.FetchRunStatusFailed
		run.ErrorMessage = sql.NullString{String: fmt.Sprintf("all %d brokers failed", failed), Valid: true}
	}
	run.TotalCreated = totalCreated
	run.TotalUpdated = totalUpdated
	run.CompletedAt = sql.NullTime{Time: utils.TimeNowTaipei(), Valid: true}
	if summary, err := json.Marshal(results); err == nil {
		run.Summary = summary
	}
	if err := s.runRepo.Update(ctx, run); err != nil {
		return nil, err
	}

	if err := s.notifier.SendMessage(telegram.FormatFetchRunSummary(results, totalCreated, totalUpdated)); err != nil {
		s.log.Warn("Failed to send fetch run summary", logger.ErrorField(err))
	}

	s.log.Info("Fetch run completed",
		logger.IntField("total_created", totalCreated),
		logger.IntField("total_updated", totalUpdated))
	return run, nil
}

func (s *fetcherService) fetchBroker(ctx context.Context, broker *entity.Broker) telegram.BrokerRunResult {
	result := telegram.BrokerRunResult{BrokerName: broker.Name}

	link := crawler.RankingDetailLink(broker.FbsA, broker.FbsB, 1)
	buyRows, date, sellRows := s.crawler.FetchTopBuyers(ctx, link, crawler.RecordTypeDailyRanking)
	if len(buyRows) == 0 && len(sellRows) == 0 {
		result.Err = "no ranking rows scraped"
		return result
	}

	recordDate, err := crawler.ParseRecordDate(date.Value)
	if err != nil {
		result.Err = fmt.Sprintf("unusable record date %q", date.Value)
		return result
	}
	result.Date = recordDate.Format("2006-01-02")

	for _, row := range append(buyRows, sellRows...) {
		record := &entity.StockRecord{
			BrokerID:   broker.ID,
			StockCode:  row.Code,
			StockName:  row.Name,
			Date:       recordDate,
			BuyVolume:  row.Buy,
			SellVolume: row.Sell,
			NetVolume:  row.Net,
			RecordType: row.RecordType,
		}
		created, err := s.recordRepo.Upsert(ctx, record)
		if err != nil {
			result.Err = fmt.Sprintf("store %s: %v", row.Code, err)
			return result
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}
	return result
}
