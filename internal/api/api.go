// Package api assembles the API module with the domain systems and route
// registration.
package api

import (
	"net/http"

	"github.com/padronapp/padron/internal/config"
	"github.com/padronapp/padron/internal/infrastructure"
	"github.com/padronapp/padron/pkg/middleware"
	"github.com/padronapp/padron/pkg/module"
)

// NewModule creates the API module with the domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
