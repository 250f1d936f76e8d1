package api

import (
	"net/http"

	"github.com/padronapp/padron/internal/config"
	"github.com/padronapp/padron/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Users.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
	)
}
