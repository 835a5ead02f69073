package config

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Host != "localhost" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "localhost")
	}
	if cfg.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 5432)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.Debug {
		t.Error("Debug should default to false")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PG_HOST", "db.internal")
	t.Setenv("PG_PORT", "6543")
	t.Setenv("PG_DATABASE", "gearstore_test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want %q", cfg.Database.Host, "db.internal")
	}
	if cfg.Database.Port != 6543 {
		t.Errorf("Database.Port = %d, want %d", cfg.Database.Port, 6543)
	}
	if cfg.Database.Name != "gearstore_test" {
		t.Errorf("Database.Name = %q, want %q", cfg.Database.Name, "gearstore_test")
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "postgres",
			Password: "secret",
			Name:     "gearstore_dev",
			SSLMode:  "disable",
		},
	}

	want := "host=localhost user=postgres password=secret dbname=gearstore_dev port=5432 sslmode=disable"
	if got := cfg.DatabaseDSN(); got != want {
		t.Errorf("DatabaseDSN() = %q, want %q", got, want)
	}
}

func TestServerAddr(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Host: "0.0.0.0", Port: 9090}}
	if got := cfg.ServerAddr(); got != "0.0.0.0:9090" {
		t.Errorf("ServerAddr() = %q, want %q", got, "0.0.0.0:9090")
	}
}
