package config

import (
	"golang-broker-scryper/internal/crawler"
	"golang-broker-scryper/pkg/config"
)

// Crawler holds scraping configuration: the outbound rate limit and the
// per-broker signal thresholds keyed by display name.
type Crawler struct {
	MaxRequestPerMinute int                           `mapstructure:"max_request_per_minute"`
	DefaultThresholds   crawler.Thresholds            `mapstructure:"default_thresholds"`
	BrokerConditions    map[string]crawler.Thresholds `mapstructure:"broker_conditions"`
	StatsCacheTTL       string                        `mapstructure:"stats_cache_ttl"`
}

// Scheduler holds the cron expressions for the two daily fetch runs.
type Scheduler struct {
	FetchCrons []string `mapstructure:"fetch_crons"`
}

// Telegram holds configuration for the run-summary notifier; an empty bot
// token disables it.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the server.
type Config struct {
	App       config.App      `mapstructure:"app"`
	Logger    config.Logger   `mapstructure:"logger"`
	Database  config.Database `mapstructure:"database"`
	Redis     config.Redis    `mapstructure:"redis"`
	API       config.API      `mapstructure:"api"`
	Crawler   Crawler         `mapstructure:"crawler"`
	Scheduler Scheduler       `mapstructure:"scheduler"`
	Telegram  Telegram        `mapstructure:"telegram"`
}

// Load loads the server configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
