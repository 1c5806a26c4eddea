package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-broker-scryper/internal/crawler"
	"golang-broker-scryper/internal/server/config"
	delivery "golang-broker-scryper/internal/server/delivery/http"
	_ "golang-broker-scryper/internal/server/docs"
	"golang-broker-scryper/internal/server/repository"
	"golang-broker-scryper/internal/server/service"
	"golang-broker-scryper/pkg/logger"
	"golang-broker-scryper/pkg/postgres"
	"golang-broker-scryper/pkg/redis"
	"golang-broker-scryper/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the broker ranking server",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	// Create a context that is canceled on interrupt signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Broker Ranking Server", logger.Field("name", cfg.App.Name))

	// Initialize database
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

	// Initialize Redis
	redisCfg := redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	}
	redisClient, err := redis.NewClient(redisCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
	}
	defer redisClient.Close()

	// Initialize Telegram notifier
	notifier := telegram.NewNoop()
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Initialize crawler
	fetcher := crawler.NewFetcher(appLogger, cfg.Crawler.MaxRequestPerMinute)
	thresholds := crawler.NewThresholdTable(cfg.Crawler.BrokerConditions, cfg.Crawler.DefaultThresholds)
	rankingCrawler := crawler.NewCrawler(appLogger, fetcher, thresholds)

	// Initialize repositories
	brokerRepo := repository.NewBrokerRepository(db.DB)
	recordRepo := repository.NewStockRecordRepository(db.DB)
	runRepo := repository.NewFetchRunRepository(db.DB)

	// Initialize services
	statsCacheTTL := 5 * time.Minute
	if cfg.Crawler.StatsCacheTTL != "" {
		statsCacheTTL, err = time.ParseDuration(cfg.Crawler.StatsCacheTTL)
		if err != nil {
			appLogger.Fatal("Invalid stats cache TTL", logger.ErrorField(err))
		}
	}
	brokerSvc := service.NewBrokerService(brokerRepo)
	crawlerSvc := service.NewCrawlerService(brokerRepo, rankingCrawler, appLogger)
	recordSvc := service.NewStockRecordService(recordRepo, redisClient, statsCacheTTL, appLogger)
	fetcherSvc := service.NewFetcherService(brokerRepo, recordRepo, runRepo, rankingCrawler, notifier, appLogger)

	// Register scheduled fetch runs
	registry := service.NewJobRegistry(appLogger)
	for i, spec := range cfg.Scheduler.FetchCrons {
		id := fmt.Sprintf("fetch-all-%d", i)
		if err := registry.Register(id, spec, func() {
			if _, err := fetcherSvc.FetchAndStoreAll(ctx); err != nil {
				appLogger.Error("Scheduled fetch run failed", logger.ErrorField(err))
			}
		}); err != nil {
			appLogger.Fatal("Failed to register fetch job",
				logger.StringField("cron", spec), logger.ErrorField(err))
		}
	}
	registry.Start()
	defer registry.Stop()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	// Initialize handlers and routes
	apiV1 := e.Group("/api/v1")

	brokerHandler := delivery.NewBrokerHandler(brokerSvc, appLogger)
	brokerHandler.RegisterRoutes(apiV1.Group("/brokers"))

	crawlerHandler := delivery.NewCrawlerHandler(crawlerSvc, appLogger)
	crawlerHandler.RegisterRoutes(apiV1.Group("/crawler"))

	recordHandler := delivery.NewStockRecordHandler(recordSvc, appLogger)
	recordHandler.RegisterRoutes(apiV1.Group("/records"))

	runHandler := delivery.NewFetchRunHandler(fetcherSvc, runRepo, appLogger)
	runHandler.RegisterRoutes(apiV1.Group("/runs"))

	e.GET("/swagger/*", swagger.WrapHandler)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	// Gracefully shutdown the server
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

// @title Broker Ranking Scryper API
// @version 1.0
// @description Scrapes and stores Taiwan brokerage top buyer/seller rankings.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "server"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config-server.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing server CLI: %s\n", err)
		os.Exit(1)
	}
}
