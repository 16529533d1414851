package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("PORT")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")

	cfg := Load()

	if cfg.Port != DefaultPort {
		t.Fatalf("expected default port %q, got %q", DefaultPort, cfg.Port)
	}
	if cfg.DatabaseURL != DefaultDatabaseURL {
		t.Fatalf("expected default url, got %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != DefaultDatabaseName {
		t.Fatalf("expected default name, got %q", cfg.DatabaseName)
	}
	if cfg.DatabaseURLSet || cfg.DatabaseNameSet {
		t.Fatal("presence flags must be false when env is unset")
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "shop")

	cfg := Load()

	if cfg.Port != "9000" {
		t.Fatalf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.DatabaseURL != "mongodb://db:27017" {
		t.Fatalf("unexpected url %q", cfg.DatabaseURL)
	}
	if cfg.DatabaseName != "shop" {
		t.Fatalf("unexpected name %q", cfg.DatabaseName)
	}
	if !cfg.DatabaseURLSet || !cfg.DatabaseNameSet {
		t.Fatal("presence flags must be true when env is set")
	}
}
