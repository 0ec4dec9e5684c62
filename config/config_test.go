package config

import (
	"strings"
	"testing"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/tournament?sslmode=disable")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("SERVER_PORT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want default 8080", cfg.ServerPort)
	}
	if cfg.AdminUsername != "admin" {
		t.Errorf("AdminUsername = %q, want default %q", cfg.AdminUsername, "admin")
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		unset  string
		wantIn string
	}{
		{"database url", "DATABASE_URL", "DATABASE_URL"},
		{"jwt secret", "JWT_SECRET_KEY", "JWT_SECRET_KEY"},
		{"admin hash", "ADMIN_PASSWORD_HASH", "ADMIN_PASSWORD_HASH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.unset, "")

			if _, err := Load(); err == nil || !strings.Contains(err.Error(), tt.wantIn) {
				t.Errorf("Load() error = %v, want mention of %s", err, tt.wantIn)
			}
		})
	}
}

func TestLoad_PortValidation(t *testing.T) {
	tests := []struct {
		name string
		port string
		ok   bool
	}{
		{"custom valid", "9090", true},
		{"not a number", "http", false},
		{"zero", "0", false},
		{"too large", "70000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("SERVER_PORT", tt.port)

			cfg, err := Load()
			if tt.ok {
				if err != nil {
					t.Fatalf("Load: %v", err)
				}
				if cfg.ServerPort != 9090 {
					t.Errorf("ServerPort = %d, want 9090", cfg.ServerPort)
				}
				return
			}
			if err == nil {
				t.Errorf("Load() accepted SERVER_PORT=%q", tt.port)
			}
		})
	}
}
