package config

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // default timezone must resolve in minimal containers

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task intake
	Intake   IntakeConfig
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

// IntakeConfig controls the natural-language task parser.
type IntakeConfig struct {
	Timezone       string
	MaxInputLength int
	CacheSize      int
	CacheTTL       time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	// Task intake
	cfg.Intake.Timezone = viper.GetString("intake.timezone")
	cfg.Intake.MaxInputLength = viper.GetInt("intake.max_input_length")
	cfg.Intake.CacheSize = viper.GetInt("intake.cache_size")
	cfg.Intake.CacheTTL = viper.GetDuration("intake.cache_ttl")

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.per_min", 120)

	viper.SetDefault("intake.timezone", "Asia/Ho_Chi_Minh")
	viper.SetDefault("intake.max_input_length", 1000)
	viper.SetDefault("intake.cache_size", 1024)
	viper.SetDefault("intake.cache_ttl", "10m")
}

// validate rejects settings the service cannot start with.
func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Intake.MaxInputLength <= 0 {
		return fmt.Errorf("intake.max_input_length must be positive, got %d", cfg.Intake.MaxInputLength)
	}
	if cfg.Intake.CacheSize <= 0 {
		return fmt.Errorf("intake.cache_size must be positive, got %d", cfg.Intake.CacheSize)
	}
	if cfg.RateLimit.PerMin <= 0 {
		return fmt.Errorf("rate_limit.per_min must be positive, got %d", cfg.RateLimit.PerMin)
	}
	if _, err := time.LoadLocation(cfg.Intake.Timezone); err != nil {
		return fmt.Errorf("intake.timezone: %w", err)
	}
	return nil
}
