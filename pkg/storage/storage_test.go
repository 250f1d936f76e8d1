package storage

import (
	"errors"
	"net/http"
	"testing"
)

func TestConfigFinalize(t *testing.T) {
	t.Run("container default", func(t *testing.T) {
		cfg := Config{ConnectionString: "UseDevelopmentStorage=true"}
		if err := cfg.Finalize(nil); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		if cfg.ContainerName != "fotos" {
			t.Errorf("ContainerName = %q, expected default fotos", cfg.ContainerName)
		}
	})

	t.Run("missing connection string", func(t *testing.T) {
		var cfg Config
		if err := cfg.Finalize(nil); err == nil {
			t.Error("expected validation error")
		}
	})

	t.Run("env override", func(t *testing.T) {
		t.Setenv("TEST_STORAGE_CONTAINER", "imagenes")
		t.Setenv("TEST_STORAGE_CONN", "UseDevelopmentStorage=true")

		var cfg Config
		env := &Env{ContainerName: "TEST_STORAGE_CONTAINER", ConnectionString: "TEST_STORAGE_CONN"}
		if err := cfg.Finalize(env); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		if cfg.ContainerName != "imagenes" {
			t.Errorf("ContainerName = %q, expected env override", cfg.ContainerName)
		}
	})
}

func TestConfigMerge(t *testing.T) {
	cfg := Config{ContainerName: "fotos", ConnectionString: "base"}
	cfg.Merge(&Config{ConnectionString: "overlay"})

	if cfg.ConnectionString != "overlay" {
		t.Errorf("ConnectionString = %q, expected overlay value", cfg.ConnectionString)
	}
	if cfg.ContainerName != "fotos" {
		t.Errorf("ContainerName = %q, expected base value preserved", cfg.ContainerName)
	}
}

func TestKeyFromURL(t *testing.T) {
	a := &azure{container: "fotos"}

	tests := []struct {
		name     string
		url      string
		expected string
		err      error
	}{
		{
			"blob url",
			"https://cuenta.blob.core.windows.net/fotos/AB123456/f.png",
			"AB123456/f.png",
			nil,
		},
		{
			"nested key",
			"http://127.0.0.1:10000/devstoreaccount1/fotos/XY/uuid.webp",
			"XY/uuid.webp",
			nil,
		},
		{
			"other container",
			"https://cuenta.blob.core.windows.net/documentos/f.png",
			"",
			ErrForeignURL,
		},
		{
			"container with no key",
			"https://cuenta.blob.core.windows.net/fotos/",
			"",
			ErrForeignURL,
		},
		{
			"unrelated url",
			"https://example.com/imagen.png",
			"",
			ErrForeignURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := a.KeyFromURL(tt.url)
			if !errors.Is(err, tt.err) {
				t.Fatalf("KeyFromURL(%q) error = %v, expected %v", tt.url, err, tt.err)
			}
			if key != tt.expected {
				t.Errorf("KeyFromURL(%q) = %q, expected %q", tt.url, key, tt.expected)
			}
		})
	}
}

func TestValidateKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected error
	}{
		{"valid", "AB123456/f.png", nil},
		{"empty", "", ErrEmptyKey},
		{"traversal", "../otro/f.png", ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateKey(tt.key); !errors.Is(err, tt.expected) {
				t.Errorf("validateKey(%q) = %v, expected %v", tt.key, err, tt.expected)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"empty key", ErrEmptyKey, http.StatusBadRequest},
		{"invalid key", ErrInvalidKey, http.StatusBadRequest},
		{"foreign url", ErrForeignURL, http.StatusBadRequest},
		{"unknown", errors.New("timeout"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapHTTPStatus(tt.err); got != tt.expected {
				t.Errorf("MapHTTPStatus(%v) = %d, expected %d", tt.err, got, tt.expected)
			}
		})
	}
}
