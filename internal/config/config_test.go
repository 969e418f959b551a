package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if len(cfg.Users) != 6 {
		t.Errorf("expected 6 default users, got %d", len(cfg.Users))
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("Load(\"\") mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paints.yaml")
	content := `endpoint: http://localhost:9000/gql
timeout: 3s
concurrency: 2
users:
  - id: abc
    note: first
  - id: def
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Endpoint != "http://localhost:9000/gql" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
	if cfg.Concurrency != 2 {
		t.Errorf("Concurrency = %d", cfg.Concurrency)
	}
	want := []User{{ID: "abc", Note: "first"}, {ID: "def"}}
	if diff := cmp.Diff(want, cfg.Users); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
	if cfg.Burst != Default().Burst {
		t.Errorf("Burst = %d, want default kept", cfg.Burst)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("users: [unterminated"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvEndpoint, "https://example.test/gql")
	t.Setenv(EnvUsers, "a=Alpha, b ,,c")
	t.Setenv(EnvListen, ":9999")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Endpoint != "https://example.test/gql" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.Listen != ":9999" {
		t.Errorf("Listen = %q", cfg.Listen)
	}
	want := []User{{ID: "a", Note: "Alpha"}, {ID: "b"}, {ID: "c"}}
	if diff := cmp.Diff(want, cfg.Users); diff != "" {
		t.Errorf("Users mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"bad scheme", func(c *Config) { c.Endpoint = "ftp://x" }, true},
		{"no users", func(c *Config) { c.Users = nil }, true},
		{"empty id", func(c *Config) { c.Users = []User{{ID: ""}} }, true},
		{"zero concurrency", func(c *Config) { c.Concurrency = 0 }, true},
		{"negative rate", func(c *Config) { c.RequestsPerSecond = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestViewerUsers(t *testing.T) {
	cfg := Config{Users: []User{{ID: "x", Note: "y"}}}
	got := cfg.ViewerUsers()
	if len(got) != 1 || got[0].ID != "x" || got[0].Note != "y" {
		t.Errorf("ViewerUsers() = %+v", got)
	}
}
