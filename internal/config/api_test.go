package config

import "testing"

func TestAPIConfigFinalize(t *testing.T) {
	var cfg APIConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.BasePath != "/api" {
		t.Errorf("BasePath = %q, expected /api", cfg.BasePath)
	}
	if cfg.MaxUploadSize != "10MB" {
		t.Errorf("MaxUploadSize = %q, expected 10MB", cfg.MaxUploadSize)
	}
	if cfg.Pagination.DefaultLimit != 3 {
		t.Errorf("Pagination.DefaultLimit = %d, expected 3", cfg.Pagination.DefaultLimit)
	}
	if cfg.Pagination.MaxLimit != 100 {
		t.Errorf("Pagination.MaxLimit = %d, expected 100", cfg.Pagination.MaxLimit)
	}
	if len(cfg.CORS.Origins) != 1 || cfg.CORS.Origins[0] != "*" {
		t.Errorf("CORS.Origins = %v, expected wildcard default", cfg.CORS.Origins)
	}
}

func TestAPIConfigEnvOverrides(t *testing.T) {
	t.Setenv("PADRON_API_BASE_PATH", "/registro")
	t.Setenv("PADRON_API_MAX_UPLOAD_SIZE", "5MB")
	t.Setenv("PADRON_PAGINATION_DEFAULT_LIMIT", "7")

	var cfg APIConfig
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}

	if cfg.BasePath != "/registro" {
		t.Errorf("BasePath = %q, expected env override", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 5*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, expected 5MB", cfg.MaxUploadSizeBytes())
	}
	if cfg.Pagination.DefaultLimit != 7 {
		t.Errorf("Pagination.DefaultLimit = %d, expected env override", cfg.Pagination.DefaultLimit)
	}
}

func TestMaxUploadSizeBytesFallback(t *testing.T) {
	cfg := APIConfig{MaxUploadSize: "no es un tamano"}
	if got := cfg.MaxUploadSizeBytes(); got != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes = %d, expected 10MB fallback", got)
	}
}
