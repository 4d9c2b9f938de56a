package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

const baseConfig = `port: "8080"
databaseURL: "postgres://localhost/craftlink"
logLevel: "info"
tokenTTL: "168h"
seedIfEmpty: true
version: "1.0.0"
`

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, baseConfig)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/craftlink" {
		t.Errorf("DatabaseURL = %q", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != "168h" {
		t.Errorf("TokenTTL = %q", cfg.TokenTTL)
	}
	if !cfg.SeedIfEmpty {
		t.Error("SeedIfEmpty = false, want true")
	}
	if cfg.JWTSecret != "" {
		t.Errorf("JWTSecret = %q, want empty", cfg.JWTSecret)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, baseConfig)

	t.Setenv("PORT", "9090")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("SEED_IF_EMPTY", "false")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("Port = %q, want env override", cfg.Port)
	}
	if cfg.JWTSecret != "env-secret" {
		t.Errorf("JWTSecret = %q", cfg.JWTSecret)
	}
	if cfg.SeedIfEmpty {
		t.Error("SeedIfEmpty = true, want env override false")
	}
	if len(cfg.TrustedProxies) != 2 || cfg.TrustedProxies[0] != "10.0.0.0/8" {
		t.Errorf("TrustedProxies = %v", cfg.TrustedProxies)
	}
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	path := writeConfig(t, "port: \"8080\"\n")

	if _, err := Load(path); err == nil {
		t.Fatal("expected error for missing databaseURL")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestParseTokenTTL(t *testing.T) {
	cases := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{"", 0, false},
		{"168h", 168 * time.Hour, false},
		{"30m", 30 * time.Minute, false},
		{"bogus", 0, true},
		{"-1h", 0, true},
		{"0s", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseTokenTTL(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseTokenTTL(%q): expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTokenTTL(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseTokenTTL(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
