package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang-broker-scryper/internal/crawler"
	"golang-broker-scryper/internal/server/config"
	"golang-broker-scryper/internal/server/repository"
	"golang-broker-scryper/internal/server/service"
	"golang-broker-scryper/pkg/logger"
	"golang-broker-scryper/pkg/postgres"
	"golang-broker-scryper/pkg/telegram"

	"github.com/spf13/cobra"
)

var configPath string

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Runs one fetch-and-store pass over all tracked brokers",
	Run:   runFetch,
}

func runFetch(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	notifier := telegram.NewNoop()
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	fetcher := crawler.NewFetcher(appLogger, cfg.Crawler.MaxRequestPerMinute)
	thresholds := crawler.NewThresholdTable(cfg.Crawler.BrokerConditions, cfg.Crawler.DefaultThresholds)
	rankingCrawler := crawler.NewCrawler(appLogger, fetcher, thresholds)

	brokerRepo := repository.NewBrokerRepository(db.DB)
	recordRepo := repository.NewStockRecordRepository(db.DB)
	runRepo := repository.NewFetchRunRepository(db.DB)
	fetcherSvc := service.NewFetcherService(brokerRepo, recordRepo, runRepo, rankingCrawler, notifier, appLogger)

	run, err := fetcherSvc.FetchAndStoreAll(ctx)
	if err != nil {
		appLogger.Fatal("Fetch run failed", logger.ErrorField(err))
	}

	appLogger.Info("Fetch run finished",
		logger.IntField("total_created", run.TotalCreated),
		logger.IntField("total_updated", run.TotalUpdated))
}

func main() {
	rootCmd := &cobra.Command{Use: "crawler"}

	fetchCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-server.yaml", "Path to the configuration file")

	rootCmd.AddCommand(fetchCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing crawler CLI: %s\n", err)
		os.Exit(1)
	}
}
