package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("DB_NAME", "studentdb")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("Server.Port = %q, want 3000", cfg.Server.Port)
	}
	if cfg.Database.DBName != "studentdb" {
		t.Errorf("Database.DBName = %q, want studentdb", cfg.Database.DBName)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowOrigins, []string{"*"}) {
		t.Errorf("CORS.AllowOrigins = %v, want [*]", cfg.CORS.AllowOrigins)
	}
	if cfg.Database.FailFast {
		t.Error("FailFast should default to false")
	}
}

func TestLoadConfigFileAndEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "8081"
database:
  host: db.internal
  dbname: school
  max_open_conns: 4
  max_idle_conns: 1
cors:
  allow_origins: ["http://localhost:5500"]
logging:
  level: debug
`)

	t.Setenv("PORT", "9090")
	t.Setenv("DB_FAIL_FAST", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.example, http://b.example,")
	t.Setenv("DB_NAME", "school")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("env should override file port, got %q", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Database.Host = %q, want db.internal", cfg.Database.Host)
	}
	if cfg.Database.MaxOpenConns != 4 {
		t.Errorf("Database.MaxOpenConns = %d, want 4", cfg.Database.MaxOpenConns)
	}
	if !cfg.Database.FailFast {
		t.Error("DB_FAIL_FAST=true should enable fail fast")
	}
	want := []string{"http://a.example", "http://b.example"}
	if !reflect.DeepEqual(cfg.CORS.AllowOrigins, want) {
		t.Errorf("CORS.AllowOrigins = %v, want %v", cfg.CORS.AllowOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "bad lifetime",
			yaml:    "database:\n  conn_max_lifetime: forever\n",
			wantErr: "conn_max_lifetime",
		},
		{
			name:    "zero connect timeout",
			yaml:    "database:\n  connect_timeout: 0s\n",
			wantErr: "connect_timeout must be positive",
		},
		{
			name:    "negative connect timeout",
			yaml:    "database:\n  connect_timeout: -1s\n",
			wantErr: "connect_timeout must be positive",
		},
		{
			name:    "idle above open",
			yaml:    "database:\n  max_open_conns: 2\n  max_idle_conns: 5\n",
			wantErr: "max_idle_conns",
		},
		{
			name:    "malformed yaml",
			yaml:    "server: [",
			wantErr: "failed to parse config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfigFile(t, tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSetFieldFromEnvRejectsBadValues(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	if err := loadFromEnv(cfg); err == nil {
		t.Error("expected an error for a non-numeric integer")
	}
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "app"
	cfg.Database.Password = "p@ss word"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "students"
	cfg.Database.SSLMode = ""

	got := cfg.GetPostgresConnectionString()
	want := "postgres://app:p%40ss%20word@db:5433/students?sslmode=disable"
	if got != want {
		t.Errorf("GetPostgresConnectionString() = %q, want %q", got, want)
	}
}
