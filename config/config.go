package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Personal Task Planner specifics
	Storage   StorageConfig
	Clock     ClockConfig
	RateLimit RateLimitConfig
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

// StorageConfig selects the blob store backend. Driver is "sqlite" or
// "memory"; Path is the database file for the sqlite driver.
type StorageConfig struct {
	Driver string
	Path   string
}

// ClockConfig controls the derivation clock. Timezone names the IANA zone
// used for calendar-date math; TickSeconds is the refresh period of the
// ticking clock.
type ClockConfig struct {
	Timezone    string
	TickSeconds int
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
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

	// Storage
	cfg.Storage.Driver = viper.GetString("storage.driver")
	cfg.Storage.Path = viper.GetString("storage.path")
	if path := viper.GetString("storage_path"); path != "" {
		cfg.Storage.Path = path
	}
	switch cfg.Storage.Driver {
	case "sqlite", "memory":
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}

	// Clock
	cfg.Clock.Timezone = viper.GetString("clock.timezone")
	cfg.Clock.TickSeconds = viper.GetInt("clock.tick_seconds")
	if cfg.Clock.TickSeconds <= 0 {
		return nil, fmt.Errorf("clock.tick_seconds must be positive, got %d", cfg.Clock.TickSeconds)
	}

	// Rate limiting
	cfg.RateLimit.RPS = viper.GetFloat64("rate_limit.rps")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.driver", "sqlite")
	viper.SetDefault("storage.path", "planner.db")
	viper.SetDefault("clock.timezone", "Local")
	viper.SetDefault("clock.tick_seconds", 60)
	viper.SetDefault("rate_limit.rps", 50)
	viper.SetDefault("rate_limit.burst", 100)
}
