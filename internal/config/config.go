package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	API     APIConfig     `mapstructure:"api"`
	Content ContentConfig `mapstructure:"content"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// APIConfig holds settings for the remote content API.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ContentConfig selects the content source and locates the static data
// directory used by the filesystem store.
type ContentConfig struct {
	// Source is "remote" (API first, filesystem fallback) or "filesystem".
	// It applies uniformly to every content query; it is not per-call.
	Source  string `mapstructure:"source"`
	DataDir string `mapstructure:"data_dir"`
}

// CacheConfig holds caching configuration. TTLs are in seconds and apply to
// remote-sourced entries only; filesystem entries never expire.
type CacheConfig struct {
	Backend   string `mapstructure:"backend"` // "memory" or "sqlite"
	FilePath  string `mapstructure:"file_path"`
	NewsTTL   int    `mapstructure:"news_ttl"`
	EventsTTL int    `mapstructure:"events_ttl"`
	BrandsTTL int    `mapstructure:"brands_ttl"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `mapstructure:"level"`  // e.g., "debug", "info", "warn", "error"
	Format string `mapstructure:"format"` // e.g., "json", "console"
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig() (*Config, error) {
	// Set default values. Cache TTLs mirror the upstream CMS guidance: news
	// and events refresh every five minutes, brands change rarely.
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("api.base_url", "http://localhost:3000/api/v1")
	viper.SetDefault("api.timeout_seconds", 10)
	viper.SetDefault("content.source", "filesystem")
	viper.SetDefault("content.data_dir", "data")
	viper.SetDefault("cache.backend", "memory")
	viper.SetDefault("cache.file_path", "cache.db")
	viper.SetDefault("cache.news_ttl", 300)
	viper.SetDefault("cache.events_ttl", 300)
	viper.SetDefault("cache.brands_ttl", 3600)
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")

	// Set up viper to read from config file
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("/etc/club-mareva-site/")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Config file was found but another error was produced
			return nil, err
		}
		// Config file not found; proceed with defaults and env vars
	}

	// Set up viper to read from environment variables
	viper.SetEnvPrefix("MAREVA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Unmarshal the config into the Config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	switch cfg.Content.Source {
	case "remote", "filesystem":
	default:
		return nil, fmt.Errorf("invalid content.source %q: must be \"remote\" or \"filesystem\"", cfg.Content.Source)
	}

	return &cfg, nil
}
