package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"SERVER_PORT",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSL_MODE",
		"DB_MAX_CONNS",
		"DB_MIN_CONNS",
		"CLIENT_TIMEOUT",
		"MAIL_GATEWAY_URL",
		"AI_PROVIDER_URL",
		"IMAGE_SEARCH_URL",
	}

	for _, env := range envVars {
		originalEnv[env] = os.Getenv(env)
	}

	defer func() {
		for env, val := range originalEnv {
			if val == "" {
				os.Unsetenv(env)
			} else {
				os.Setenv(env, val)
			}
		}
	}()

	for _, env := range envVars {
		os.Unsetenv(env)
	}

	t.Run("default values", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "8080" {
			t.Errorf("ServerPort = %v, want 8080", cfg.ServerPort)
		}
		if cfg.DBHost != "localhost" {
			t.Errorf("DBHost = %v, want localhost", cfg.DBHost)
		}
		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want 5432", cfg.DBPort)
		}
		if cfg.DBName != "mkn_console" {
			t.Errorf("DBName = %v, want mkn_console", cfg.DBName)
		}
		if cfg.ClientTimeout != 15*time.Second {
			t.Errorf("ClientTimeout = %v, want 15s", cfg.ClientTimeout)
		}
		if cfg.MailGatewayURL != "" {
			t.Errorf("MailGatewayURL = %v, want empty", cfg.MailGatewayURL)
		}
	})

	t.Run("environment overrides", func(t *testing.T) {
		os.Setenv("SERVER_PORT", "9090")
		os.Setenv("DB_PORT", "5433")
		os.Setenv("CLIENT_TIMEOUT", "5s")
		os.Setenv("MAIL_GATEWAY_URL", "https://mail.example.com/api")
		defer func() {
			os.Unsetenv("SERVER_PORT")
			os.Unsetenv("DB_PORT")
			os.Unsetenv("CLIENT_TIMEOUT")
			os.Unsetenv("MAIL_GATEWAY_URL")
		}()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.ServerPort != "9090" {
			t.Errorf("ServerPort = %v, want 9090", cfg.ServerPort)
		}
		if cfg.DBPort != 5433 {
			t.Errorf("DBPort = %v, want 5433", cfg.DBPort)
		}
		if cfg.ClientTimeout != 5*time.Second {
			t.Errorf("ClientTimeout = %v, want 5s", cfg.ClientTimeout)
		}
		if cfg.MailGatewayURL != "https://mail.example.com/api" {
			t.Errorf("MailGatewayURL = %v", cfg.MailGatewayURL)
		}
	})

	t.Run("invalid int falls back to default", func(t *testing.T) {
		os.Setenv("DB_PORT", "not-a-number")
		defer os.Unsetenv("DB_PORT")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.DBPort != 5432 {
			t.Errorf("DBPort = %v, want fallback 5432", cfg.DBPort)
		}
	})
}
