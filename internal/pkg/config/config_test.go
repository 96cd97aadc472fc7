package config

import (
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("star-api")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Catalog.Source != "embedded" {
		t.Errorf("catalog.source = %q, want embedded", cfg.Catalog.Source)
	}
	if cfg.Compute.MaxFrames != 1000 {
		t.Errorf("compute.max_frames = %d, want 1000", cfg.Compute.MaxFrames)
	}
	if cfg.Telemetry.ServiceName != "star-api" {
		t.Errorf("telemetry.service_name = %q, want star-api", cfg.Telemetry.ServiceName)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg, err := Load("star-api")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		errHas string
	}{
		{"bad port", func(c *Config) { c.Server.Port = 0 }, "server.port"},
		{"bad source", func(c *Config) { c.Catalog.Source = "csv" }, "catalog.source"},
		{"postgres needs host", func(c *Config) { c.Catalog.Source = "postgres"; c.Database.Host = "" }, "database.host"},
		{"bad frame cap", func(c *Config) { c.Compute.MaxFrames = 0 }, "compute.max_frames"},
		{"bad latitude", func(c *Config) { c.Stream.LatDeg = 99 }, "stream.lat_deg"},
		{"valkey addr", func(c *Config) { c.Valkey.Enabled = true; c.Valkey.Addr = "" }, "valkey.addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errHas) {
				t.Errorf("error %q does not mention %q", err, tt.errHas)
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "stars", SSLMode: "disable"}
	want := "postgres://u:p@db:5432/stars?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN = %q, want %q", got, want)
	}
}
