package config_test

import (
	"testing"

	"github.com/iho/walletledger/internal/infrastructure/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WALLET_DATA_FILE", "")
	t.Setenv("WALLET_METRICS_TEXTFILE", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DataFile != "wallets.json" {
		t.Fatalf("expected default data file wallets.json, got %q", cfg.DataFile)
	}

	if cfg.MetricsTextfile != "" {
		t.Fatalf("expected metrics textfile default to be empty, got %q", cfg.MetricsTextfile)
	}

	if cfg.Currency != "USD" || cfg.SaveRetries != 3 || cfg.LogFormat != "console" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WALLET_DATA_FILE", "/tmp/ledger.json")
	t.Setenv("WALLET_CURRENCY", "EUR")
	t.Setenv("WALLET_SAVE_RETRIES", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("WALLET_METRICS_TEXTFILE", "/var/lib/node_exporter/wallet.prom")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error loading config: %v", err)
	}

	if cfg.DataFile != "/tmp/ledger.json" {
		t.Fatalf("expected custom data file, got %s", cfg.DataFile)
	}

	if cfg.Currency != "EUR" {
		t.Fatalf("expected currency override, got %s", cfg.Currency)
	}

	if cfg.SaveRetries != 0 {
		t.Fatalf("expected save retries override, got %d", cfg.SaveRetries)
	}

	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("expected log settings to be set, got level=%s format=%s", cfg.LogLevel, cfg.LogFormat)
	}

	if cfg.MetricsTextfile != "/var/lib/node_exporter/wallet.prom" {
		t.Fatalf("expected metrics textfile override, got %s", cfg.MetricsTextfile)
	}
}

func TestLoadInvalidRetries(t *testing.T) {
	t.Setenv("WALLET_SAVE_RETRIES", "many")

	if _, err := config.Load(); err == nil {
		t.Fatalf("expected error for invalid retry count")
	}
}
