package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type AppConfigEndpoints struct {
	GetAppConfigs   http.HandlerFunc
	GetAppConfig    http.HandlerFunc
	CreateAppConfig http.HandlerFunc
	UpdateAppConfig http.HandlerFunc
	DeleteAppConfig http.HandlerFunc
}

func NewAppConfigEndpoints(log zerolog.Logger, h *handlers.Handlers) *AppConfigEndpoints {
	return &AppConfigEndpoints{
		GetAppConfigs:   transport.For(h.AppConfigHandler.GetAppConfigs).Build(log),
		GetAppConfig:    transport.For(h.AppConfigHandler.GetAppConfig).Build(log),
		CreateAppConfig: transport.For(h.AppConfigHandler.CreateAppConfig).RequestFromJSON().Build(log),
		UpdateAppConfig: transport.For(h.AppConfigHandler.UpdateAppConfig).RequestFromJSON().Build(log),
		DeleteAppConfig: transport.For(h.AppConfigHandler.DeleteAppConfig).Build(log),
	}
}

func NewAppConfigRoutes(endpoints *AppConfigEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/api/app-config", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", endpoints.GetAppConfigs)
			r.Post("/", endpoints.CreateAppConfig)
			r.Get("/{key}", endpoints.GetAppConfig)
			r.Put("/{key}", endpoints.UpdateAppConfig)
			r.Delete("/{key}", endpoints.DeleteAppConfig)
		})
	}
}
