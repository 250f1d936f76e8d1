package database

import (
	"testing"
	"time"
)

func TestConfigFinalize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := Config{Name: "padron", User: "padron"}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}

		if cfg.Host != "localhost" || cfg.Port != 5432 {
			t.Errorf("host/port = %s:%d, expected localhost:5432", cfg.Host, cfg.Port)
		}
		if cfg.SSLMode != "disable" {
			t.Errorf("SSLMode = %q, expected disable", cfg.SSLMode)
		}
		if cfg.ConnMaxLifetimeDuration() != 15*time.Minute {
			t.Errorf("ConnMaxLifetime = %v, expected 15m", cfg.ConnMaxLifetimeDuration())
		}
		if cfg.ConnTimeoutDuration() != 5*time.Second {
			t.Errorf("ConnTimeout = %v, expected 5s", cfg.ConnTimeoutDuration())
		}
	})

	t.Run("missing name", func(t *testing.T) {
		cfg := Config{User: "padron"}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("missing user", func(t *testing.T) {
		cfg := Config{Name: "padron"}
		if err := cfg.Finalize(nil); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_DB_HOST", "db.interno")
		t.Setenv("TEST_DB_PORT", "6432")

		cfg := Config{Name: "padron", User: "padron"}
		env := &Env{Host: "TEST_DB_HOST", Port: "TEST_DB_PORT"}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}

		if cfg.Host != "db.interno" || cfg.Port != 6432 {
			t.Errorf("host/port = %s:%d, expected env overrides", cfg.Host, cfg.Port)
		}
	})
}

func TestDsn(t *testing.T) {
	cfg := Config{
		Host:     "localhost",
		Port:     5432,
		Name:     "padron",
		User:     "app",
		Password: "secreto",
		SSLMode:  "disable",
	}

	expected := "host=localhost port=5432 dbname=padron user=app password=secreto sslmode=disable"
	if got := cfg.Dsn(); got != expected {
		t.Errorf("Dsn() = %q, expected %q", got, expected)
	}
}

func TestConfigMerge(t *testing.T) {
	cfg := Config{Host: "localhost", Port: 5432, Name: "padron", User: "padron"}
	cfg.Merge(&Config{Host: "db.interno", Password: "secreto"})

	if cfg.Host != "db.interno" {
		t.Errorf("Host = %q, expected overlay value", cfg.Host)
	}
	if cfg.Password != "secreto" {
		t.Errorf("Password = %q, expected overlay value", cfg.Password)
	}
	if cfg.Port != 5432 || cfg.Name != "padron" {
		t.Error("zero overlay fields overwrote base values")
	}
}
