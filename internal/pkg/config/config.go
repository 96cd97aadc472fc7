package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Catalog   CatalogConfig   `mapstructure:"catalog"`
	Database  DatabaseConfig  `mapstructure:"database"`
	NATS      NATSConfig      `mapstructure:"nats"`
	Valkey    ValkeyConfig    `mapstructure:"valkey"`
	Compute   ComputeConfig   `mapstructure:"compute"`
	Stream    StreamConfig    `mapstructure:"stream"`
	Telemetry TelemetryConfig `mapstructure:"telemetry"`
}

type ServerConfig struct {
	Port         int `mapstructure:"port"`
	ReadTimeout  int `mapstructure:"read_timeout"`
	WriteTimeout int `mapstructure:"write_timeout"`
}

// CatalogConfig selects where the star catalog comes from. Source is
// "embedded" (compiled-in tables) or "postgres" (loaded once at startup).
// BoundariesFile optionally points at an IAU boundary polygon JSON file.
type CatalogConfig struct {
	Source         string `mapstructure:"source"`
	BoundariesFile string `mapstructure:"boundaries_file"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type NATSConfig struct {
	URL string `mapstructure:"url"`
}

type ValkeyConfig struct {
	Addr    string `mapstructure:"addr"`
	Enabled bool   `mapstructure:"enabled"`
}

// ComputeConfig bounds the numeric core: the batch frame cap and the
// coarse event-scan step.
type ComputeConfig struct {
	MaxFrames        int `mapstructure:"max_frames"`
	EventStepMinutes int `mapstructure:"event_step_minutes"`
}

// StreamConfig drives the sky stream worker: observer site coordinates
// and publish cadence.
type StreamConfig struct {
	Site            string  `mapstructure:"site"`
	LatDeg          float64 `mapstructure:"lat_deg"`
	LonDeg          float64 `mapstructure:"lon_deg"`
	IntervalSeconds int     `mapstructure:"interval_seconds"`
}

type TelemetryConfig struct {
	ServiceName string `mapstructure:"service_name"`
	TempoAddr   string `mapstructure:"tempo_addr"`
	Enabled     bool   `mapstructure:"enabled"`
}

// Load reads configuration from file and environment variables.
func Load(service string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("catalog.source", "embedded")
	v.SetDefault("catalog.boundaries_file", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "starapi")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "starapi")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.url", "nats://localhost:4222")
	v.SetDefault("valkey.addr", "localhost:6379")
	v.SetDefault("valkey.enabled", false)
	v.SetDefault("compute.max_frames", 1000)
	v.SetDefault("compute.event_step_minutes", 10)
	v.SetDefault("stream.site", "santo-domingo")
	v.SetDefault("stream.lat_deg", 18.486)
	v.SetDefault("stream.lon_deg", -69.931)
	v.SetDefault("stream.interval_seconds", 60)
	v.SetDefault("telemetry.service_name", service)
	v.SetDefault("telemetry.tempo_addr", "tempo:4317")
	v.SetDefault("telemetry.enabled", false)

	// Config file (optional)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	_ = v.ReadInConfig() // OK if missing

	// Environment variables: STARAPI_CATALOG_SOURCE -> catalog.source
	v.SetEnvPrefix("STARAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are present and sane.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("server.port must be 1-65535, got %d", c.Server.Port))
	}
	if c.Server.ReadTimeout <= 0 {
		errs = append(errs, "server.read_timeout must be positive")
	}
	if c.Server.WriteTimeout <= 0 {
		errs = append(errs, "server.write_timeout must be positive")
	}
	if c.Catalog.Source != "embedded" && c.Catalog.Source != "postgres" {
		errs = append(errs, fmt.Sprintf("catalog.source must be embedded or postgres, got %q", c.Catalog.Source))
	}
	if c.Catalog.Source == "postgres" {
		if c.Database.Host == "" {
			errs = append(errs, "database.host is required with catalog.source=postgres")
		}
		if c.Database.Port <= 0 || c.Database.Port > 65535 {
			errs = append(errs, fmt.Sprintf("database.port must be 1-65535, got %d", c.Database.Port))
		}
		if c.Database.User == "" {
			errs = append(errs, "database.user is required with catalog.source=postgres")
		}
		if c.Database.DBName == "" {
			errs = append(errs, "database.dbname is required with catalog.source=postgres")
		}
	}
	if c.NATS.URL == "" {
		errs = append(errs, "nats.url is required")
	}
	if c.Valkey.Enabled && c.Valkey.Addr == "" {
		errs = append(errs, "valkey.addr is required when valkey.enabled")
	}
	if c.Compute.MaxFrames <= 0 {
		errs = append(errs, "compute.max_frames must be positive")
	}
	if c.Compute.EventStepMinutes <= 0 {
		errs = append(errs, "compute.event_step_minutes must be positive")
	}
	if c.Stream.LatDeg < -90 || c.Stream.LatDeg > 90 {
		errs = append(errs, fmt.Sprintf("stream.lat_deg must be -90..90, got %f", c.Stream.LatDeg))
	}
	if c.Stream.LonDeg < -180 || c.Stream.LonDeg > 180 {
		errs = append(errs, fmt.Sprintf("stream.lon_deg must be -180..180, got %f", c.Stream.LonDeg))
	}
	if c.Stream.IntervalSeconds <= 0 {
		errs = append(errs, "stream.interval_seconds must be positive")
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
