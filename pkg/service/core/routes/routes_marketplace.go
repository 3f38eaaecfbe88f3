package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type MarketplaceEndpoints struct {
	GetMarketplace http.HandlerFunc
}

func NewMarketplaceEndpoints(log zerolog.Logger, h *handlers.Handlers) *MarketplaceEndpoints {
	return &MarketplaceEndpoints{
		GetMarketplace: transport.For(h.MarketplaceHandler.GetMarketplace).Build(log),
	}
}

func NewMarketplaceRoutes(endpoints *MarketplaceEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/api/data-marketplace", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", endpoints.GetMarketplace)
		})
	}
}
