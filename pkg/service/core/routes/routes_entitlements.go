package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type EntitlementEndpoints struct {
	GetEntitledResources http.HandlerFunc
	CreateEntitlement    http.HandlerFunc
	DeleteEntitlement    http.HandlerFunc
}

func NewEntitlementEndpoints(log zerolog.Logger, h *handlers.Handlers) *EntitlementEndpoints {
	return &EntitlementEndpoints{
		GetEntitledResources: transport.For(h.EntitlementsHandler.GetEntitledResources).Build(log),
		CreateEntitlement:    transport.For(h.EntitlementsHandler.CreateEntitlement).RequestFromJSON().Build(log),
		DeleteEntitlement:    transport.For(h.EntitlementsHandler.DeleteEntitlement).Build(log),
	}
}

func NewEntitlementRoutes(endpoints *EntitlementEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/api/data-entitlement", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", endpoints.GetEntitledResources)
			r.Post("/", endpoints.CreateEntitlement)
			r.Delete("/{id}", endpoints.DeleteEntitlement)
		})
	}
}
