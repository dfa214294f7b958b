package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("expected %s, got %s", DefaultListenAddr, cfg.Server.ListenAddr)
	}
	if cfg.Replan.Cron != DefaultReplanCron {
		t.Errorf("expected %s, got %s", DefaultReplanCron, cfg.Replan.Cron)
	}
	if cfg.Calendar.CacheTTL() != 24*time.Hour {
		t.Errorf("expected 24h, got %s", cfg.Calendar.CacheTTL())
	}
	if cfg.Calendar.FetchTimeout() != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.Calendar.FetchTimeout())
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `server:
  listen_addr: ":8000"
replan:
  cron: "30 5 * * *"
calendar:
  cache_ttl_hours: 12
  fetch_timeout_sec: 5
catalog_path: /etc/thewho/machines.yaml
orders_path: /var/lib/thewho/orders.yaml
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != ":8000" {
		t.Errorf("expected :8000, got %s", cfg.Server.ListenAddr)
	}
	if cfg.Replan.Cron != "30 5 * * *" {
		t.Errorf("unexpected cron: %s", cfg.Replan.Cron)
	}
	if cfg.Calendar.CacheTTL() != 12*time.Hour {
		t.Errorf("expected 12h, got %s", cfg.Calendar.CacheTTL())
	}
	if cfg.OrdersPath != "/var/lib/thewho/orders.yaml" {
		t.Errorf("unexpected orders path: %s", cfg.OrdersPath)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("orders_path: orders.yaml\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != DefaultListenAddr {
		t.Errorf("missing fields should default, got %s", cfg.Server.ListenAddr)
	}
	if cfg.OrdersPath != "orders.yaml" {
		t.Errorf("unexpected orders path: %s", cfg.OrdersPath)
	}
}

func TestLoad_InvalidTTL(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("calendar:\n  cache_ttl_hours: -1\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
