package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestUpdateFromOverwritesOnlyNonZero(t *testing.T) {
	cfg := Default()
	cfg.UpdateFrom(Config{Addr: ":9999", PollInterval: 50 * time.Millisecond})

	if cfg.Addr != ":9999" {
		t.Fatalf("addr not overridden: %q", cfg.Addr)
	}
	if cfg.PollInterval != 50*time.Millisecond {
		t.Fatalf("poll interval not overridden: %v", cfg.PollInterval)
	}
	if cfg.ChatLines != Default().ChatLines || cfg.LogLevel != Default().LogLevel {
		t.Fatal("zero-valued overrides must not touch existing values")
	}
}

func TestLoadWritesAndReadsDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, resolved, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if resolved != path {
		t.Fatalf("resolved path %q, want %q", resolved, path)
	}
	if cfg != Default() {
		t.Fatalf("first load should yield defaults, got %+v", cfg)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config file not written: %v", err)
	}

	again, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if again != cfg {
		t.Fatalf("reload changed config: %+v vs %+v", again, cfg)
	}
}

func TestLoadReadsExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	contents := "addr: \":4242\"\nchat_lines: 10\n"
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, err := Load(nil, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":4242" || cfg.ChatLines != 10 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.WrapWidth != Default().WrapWidth {
		t.Fatalf("unset keys should keep defaults: %+v", cfg)
	}
}
