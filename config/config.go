package config

import (
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Travel   TravelConfig   `yaml:"travel"`
	Geo      GeoConfig      `yaml:"geo"`
	Search   SearchConfig   `yaml:"search"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
}

// DatabaseConfig holds the database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
}

// TravelConfig holds the settings for the driving-time estimation service.
type TravelConfig struct {
	BaseURL         string        `yaml:"base_url"`
	APIKey          string        `yaml:"api_key"`
	TimeoutSeconds  int           `yaml:"timeout_seconds"`
	Timeout         time.Duration `yaml:"-"` // Ignored by YAML parser
	CacheTTLMinutes int           `yaml:"cache_ttl_minutes"`
	MaxConcurrent   int           `yaml:"max_concurrent"`
	RatePerSec      float64       `yaml:"rate_per_sec"`
	RateBurst       int           `yaml:"rate_burst"`
}

// GeoConfig holds the settings for the postal-code locality lookup service.
type GeoConfig struct {
	BaseURL         string        `yaml:"base_url"`
	Country         string        `yaml:"country"`
	TimeoutSeconds  int           `yaml:"timeout_seconds"`
	Timeout         time.Duration `yaml:"-"` // Ignored by YAML parser
	CacheTTLMinutes int           `yaml:"cache_ttl_minutes"`
}

// SearchConfig holds the availability-search settings.
type SearchConfig struct {
	Timezone string `yaml:"timezone"`
}

// Load reads the configuration from the given path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if cfg.Server.Port <= 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.RateLimitPerSec <= 0 {
		cfg.Server.RateLimitPerSec = 10
	}
	if cfg.Server.RateLimitBurst <= 0 {
		cfg.Server.RateLimitBurst = 5
	}
	if cfg.Server.CacheTTLSeconds <= 0 {
		cfg.Server.CacheTTLSeconds = 300
	}

	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "postgres"
	}

	if cfg.Travel.TimeoutSeconds <= 0 {
		cfg.Travel.TimeoutSeconds = 10
	}
	cfg.Travel.Timeout = time.Duration(cfg.Travel.TimeoutSeconds) * time.Second

	if cfg.Travel.CacheTTLMinutes <= 0 {
		cfg.Travel.CacheTTLMinutes = 30
	}
	if cfg.Travel.MaxConcurrent <= 0 {
		log.Printf("travel.max_concurrent is not set or invalid; defaulting to 4")
		cfg.Travel.MaxConcurrent = 4
	}
	if cfg.Travel.RatePerSec <= 0 {
		cfg.Travel.RatePerSec = 20
	}
	if cfg.Travel.RateBurst <= 0 {
		cfg.Travel.RateBurst = 10
	}

	if cfg.Geo.BaseURL == "" {
		cfg.Geo.BaseURL = "https://api.zippopotam.us"
	}
	if cfg.Geo.Country == "" {
		cfg.Geo.Country = "us"
	}
	if cfg.Geo.TimeoutSeconds <= 0 {
		cfg.Geo.TimeoutSeconds = 5
	}
	cfg.Geo.Timeout = time.Duration(cfg.Geo.TimeoutSeconds) * time.Second
	if cfg.Geo.CacheTTLMinutes <= 0 {
		cfg.Geo.CacheTTLMinutes = 720
	}

	if cfg.Search.Timezone == "" {
		cfg.Search.Timezone = "America/Phoenix"
	}

	return &cfg, nil
}
