package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 3000 {
		t.Fatalf("expected default port 3000, got %d", cfg.Port)
	}
	if cfg.PingPeriod != 54*time.Second {
		t.Fatalf("expected ping period 54s, got %s", cfg.PingPeriod)
	}
	if cfg.RoomCodeLength != 6 {
		t.Fatalf("expected room code length 6, got %d", cfg.RoomCodeLength)
	}
}

func TestLoadFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	body := "mode: debug\nport: 9090\nrate_limit: 0\nrate_interval: 250ms\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != "debug" || cfg.Port != 9090 {
		t.Fatalf("unexpected mode/port: %s %d", cfg.Mode, cfg.Port)
	}
	if cfg.RateLimit != 0 || cfg.RateInterval != 250*time.Millisecond {
		t.Fatalf("unexpected rate settings: %d %s", cfg.RateLimit, cfg.RateInterval)
	}
}

func TestLoadFileEnvOverride(t *testing.T) {
	t.Setenv("ROOMBOX_PORT", "7070")
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Port != 7070 {
		t.Fatalf("expected env port 7070, got %d", cfg.Port)
	}
}
