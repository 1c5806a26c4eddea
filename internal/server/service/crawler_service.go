package service

import (
	"context"
	"errors"
	"sort"

	"golang-broker-scryper/internal/crawler"
	"golang-broker-scryper/internal/server/dto"
	"golang-broker-scryper/internal/server/repository"
	"golang-broker-scryper/pkg/logger"
)

// ErrNoBrokers is returned when no tracked brokers exist yet.
var ErrNoBrokers = errors.New("no brokers found in database")

// RankingCrawler is the crawler surface the services consume.
type RankingCrawler interface {
	FetchTopBuyers(ctx context.Context, link string, recordType int) ([]crawler.StockRow, crawler.ResolvedDate, []crawler.StockRow)
	MergedTopBuyers(ctx context.Context, a, b, brokerName string) ([]crawler.StockRow, crawler.ResolvedDate, []crawler.StockRow)
	FetchBrokerSummary(ctx context.Context, stockNo, a, b string) *crawler.BrokerSummary
	FetchStockMainForce(ctx context.Context, stockNo, dateStr string) *crawler.MainForceData
}

// CrawlerService serves the live scraping views.
type CrawlerService interface {
	LiveView(ctx context.Context, stockNumber string) (*dto.LiveResponse, error)
	HistoryView(ctx context.Context, a, b string, days int, name, mark string) (*dto.HistoryResponse, error)
	MainForceView(ctx context.Context, stockNumber string) (*dto.MainForceResponse, error)
	StockMainForceView(ctx context.Context, stockNumber string) (*dto.StockMainForceResponse, error)
}

type crawlerService struct {
	brokerRepo repository.BrokerRepository
	crawler    RankingCrawler
	log        *logger.Logger
}

// NewCrawlerService creates a new CrawlerService.
func NewCrawlerService(brokerRepo repository.BrokerRepository, c RankingCrawler, log *logger.Logger) CrawlerService {
	return &crawlerService{brokerRepo: brokerRepo, crawler: c, log: log}
}

// LiveView scrapes the daily ranking of every tracked broker. A broker whose
// page is unreachable contributes empty lists; the view itself still
// succeeds.
func (s *crawlerService) LiveView(ctx context.Context, stockNumber string) (*dto.LiveResponse, error) {
	brokers, err := s.brokerRepo.GetBrokers(ctx)
	if err != nil {
		return nil, err
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	resp := &dto.LiveResponse{StockNumber: stockNumber, BrokersData: make([]dto.LiveBrokerData, 0, len(brokers))}
	var totals dto.TotalStats

	for _, broker := range brokers {
		data := dto.LiveBrokerData{
			BrokerName:       broker.Name,
			FubonRankingLink: crawler.RankingDetailLink(broker.FbsA, broker.FbsB, 1),
			StockBno:         broker.StockBno,
			FbsA:             broker.FbsA,
			FbsB:             broker.FbsB,
		}
		if stockNumber != "" {
			data.FubonLink = crawler.RankingLink(stockNumber, broker.FbsA, broker.FbsB)
			data.HistockLink = crawler.HiStockLink(stockNumber, broker.StockBno)

			if stats := s.crawler.FetchBrokerSummary(ctx, stockNumber, broker.FbsA, broker.FbsB); stats != nil {
				data.SpecificStats = stats
				totals.Buy += stats.Buy
				totals.Sell += stats.Sell
				totals.Net += stats.Net
			} else {
				s.log.Warn("Failed to fetch broker summary",
					logger.StringField("broker", broker.Name), logger.StringField("stock", stockNumber))
			}
		}

		buyData, date, sellData := s.crawler.MergedTopBuyers(ctx, broker.FbsA, broker.FbsB, broker.Name)
		data.BuyData = emptyIfNil(buyData)
		data.SellData = emptyIfNil(sellData)
		data.Date = date.Value

		resp.BrokersData = append(resp.BrokersData, data)
	}

	if stockNumber != "" {
		resp.TotalStats = &totals
	}
	return resp, nil
}

// HistoryView scrapes one broker's ranking page for a historical day window
// and decorates each row with its cross-reference link.
func (s *crawlerService) HistoryView(ctx context.Context, a, b string, days int, name, mark string) (*dto.HistoryResponse, error) {
	link := crawler.RankingDetailLink(a, b, days)
	buyData, date, sellData := s.crawler.FetchTopBuyers(ctx, link, crawler.RecordTypeDailyRanking)

	for i := range buyData {
		buyData[i].HistockLink = crawler.HiStockLink(buyData[i].Code, mark)
	}
	for i := range sellData {
		sellData[i].HistockLink = crawler.HiStockLink(sellData[i].Code, mark)
	}

	return &dto.HistoryResponse{
		BrokerName: name,
		Date:       date.Value,
		DateRange:  crawler.PreviousWorkdaysRange(date.Value, days),
		BuyData:    emptyIfNil(buyData),
		SellData:   emptyIfNil(sellData),
		Days:       days,
	}, nil
}

// MainForceView collects each broker's day summary for one stock, ordered by
// descending net volume. Unreachable brokers are skipped.
func (s *crawlerService) MainForceView(ctx context.Context, stockNumber string) (*dto.MainForceResponse, error) {
	brokers, err := s.brokerRepo.GetBrokers(ctx)
	if err != nil {
		return nil, err
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	resp := &dto.MainForceResponse{StockNumber: stockNumber, MainForceData: []dto.MainForceEntry{}}
	for _, broker := range brokers {
		summary := s.crawler.FetchBrokerSummary(ctx, stockNumber, broker.FbsA, broker.FbsB)
		if summary == nil {
			s.log.Warn("Failed to fetch main force data",
				logger.StringField("broker", broker.Name), logger.StringField("stock", stockNumber))
			continue
		}
		resp.MainForceData = append(resp.MainForceData, dto.MainForceEntry{
			BrokerName:  broker.Name,
			Buy:         summary.Buy,
			Sell:        summary.Sell,
			Net:         summary.Net,
			Date:        summary.Date,
			FubonLink:   crawler.RankingLink(stockNumber, broker.FbsA, broker.FbsB),
			HistockLink: crawler.HiStockLink(stockNumber, broker.StockBno),
		})
	}

	sort.SliceStable(resp.MainForceData, func(i, j int) bool {
		return resp.MainForceData[i].Net > resp.MainForceData[j].Net
	})
	return resp, nil
}

// StockMainForceView scrapes the single-stock day summary page.
func (s *crawlerService) StockMainForceView(ctx context.Context, stockNumber string) (*dto.StockMainForceResponse, error) {
	data := s.crawler.FetchStockMainForce(ctx, stockNumber, "")
	if data == nil {
		data = &crawler.MainForceData{BuyList: []crawler.BrokerRow{}, SellList: []crawler.BrokerRow{}}
	}
	return &dto.StockMainForceResponse{
		StockNumber: stockNumber,
		Date:        data.Date,
		BuyList:     data.BuyList,
		SellList:    data.SellList,
	}, nil
}

func emptyIfNil(rows []crawler.StockRow) []crawler.StockRow {
	if rows == nil {
		return []crawler.StockRow{}
	}
	return rows
}
