package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type RateSource struct {
	FeedURL        string `mapstructure:"feed_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type Refresh struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

type Scheduler struct {
	Enabled         bool `mapstructure:"enabled"`
	IntervalSeconds int  `mapstructure:"interval_seconds"`
}

type SnapshotCache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type Seed struct {
	Users []string `mapstructure:"users"`
}

type AppConfig struct {
	HTTPServer    HTTPServer    `mapstructure:"http_server"`
	Logging       Logging       `mapstructure:"logging"`
	RateSource    RateSource    `mapstructure:"rate_source"`
	Refresh       Refresh       `mapstructure:"refresh"`
	Scheduler     Scheduler     `mapstructure:"scheduler"`
	SnapshotCache SnapshotCache `mapstructure:"snapshot_cache"`
	Seed          Seed          `mapstructure:"seed"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	// a missing .env is fine, env vars may come from the environment itself
	_ = godotenv.Load()

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("http_server.port", "8081")
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("rate_source.feed_url", "https://www.cbr.ru/scripts/XML_daily.asp")
	viper.SetDefault("rate_source.timeout_seconds", 10)
	viper.SetDefault("refresh.interval_seconds", 3600)
	viper.SetDefault("scheduler.enabled", true)
	viper.SetDefault("scheduler.interval_seconds", 600)
	viper.SetDefault("snapshot_cache.max_items", 8)

	// http server env vars
	_ = viper.BindEnv("http_server.port", "HTTP_PORT")

	// logging env vars
	_ = viper.BindEnv("logging.level", "LOG_LEVEL")

	// rate source env vars
	_ = viper.BindEnv("rate_source.feed_url", "RATE_FEED_URL")
	_ = viper.BindEnv("rate_source.timeout_seconds", "RATE_FEED_TIMEOUT_SECONDS")

	// refresh env vars
	_ = viper.BindEnv("refresh.interval_seconds", "REFRESH_INTERVAL_SECONDS")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
