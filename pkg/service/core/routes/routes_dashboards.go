package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type DashboardEndpoints struct {
	GetDashboards   http.HandlerFunc
	GetDashboard    http.HandlerFunc
	CreateDashboard http.HandlerFunc
	UpdateDashboard http.HandlerFunc
	DeleteDashboard http.HandlerFunc
	Chat            http.HandlerFunc
}

func NewDashboardEndpoints(log zerolog.Logger, h *handlers.Handlers) *DashboardEndpoints {
	return &DashboardEndpoints{
		GetDashboards:   transport.For(h.DashboardsHandler.GetDashboards).Build(log),
		GetDashboard:    transport.For(h.DashboardsHandler.GetDashboard).Build(log),
		CreateDashboard: transport.For(h.DashboardsHandler.CreateDashboard).RequestFromJSON().Build(log),
		UpdateDashboard: transport.For(h.DashboardsHandler.UpdateDashboard).RequestFromJSON().Build(log),
		DeleteDashboard: transport.For(h.DashboardsHandler.DeleteDashboard).Build(log),
		Chat:            transport.For(h.DashboardsHandler.Chat).RequestFromJSON().Build(log),
	}
}

func NewDashboardRoutes(endpoints *DashboardEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/api/dashboards", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", endpoints.GetDashboards)
			r.Post("/", endpoints.CreateDashboard)
			r.Get("/{id}", endpoints.GetDashboard)
			r.Put("/{id}", endpoints.UpdateDashboard)
			r.Delete("/{id}", endpoints.DeleteDashboard)
			r.Post("/{id}/ai-chat", endpoints.Chat)
		})
	}
}
