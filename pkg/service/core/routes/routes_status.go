package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type StatusEndpoints struct {
	Root   http.HandlerFunc
	Health http.HandlerFunc
}

func NewStatusEndpoints(log zerolog.Logger, h *handlers.Handlers) *StatusEndpoints {
	return &StatusEndpoints{
		Root:   transport.For(h.StatusHandler.Root).Build(log),
		Health: transport.For(h.StatusHandler.Health).Build(log),
	}
}

func NewStatusRoutes(endpoints *StatusEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/", endpoints.Root)
		router.Get("/health", endpoints.Health)
	}
}
