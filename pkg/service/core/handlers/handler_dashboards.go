package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type dashboardsHandler struct {
	service service.DashboardService
}

func (h *dashboardsHandler) GetDashboards(ctx context.Context, _ *http.Request, _ any) ([]*service.Dashboard, error) {
	return h.service.GetDashboards(ctx)
}

func (h *dashboardsHandler) GetDashboard(ctx context.Context, _ *http.Request, _ any) (*service.Dashboard, error) {
	return h.service.GetDashboard(ctx, chi.URLParamFromCtx(ctx, "id"))
}

func (h *dashboardsHandler) CreateDashboard(ctx context.Context, _ *http.Request, in service.NewDashboard) (*transport.Created[*service.Dashboard], error) {
	dashboard, err := h.service.CreateDashboard(ctx, &in)
	if err != nil {
		return nil, err
	}

	return transport.NewCreated(dashboard), nil
}

func (h *dashboardsHandler) UpdateDashboard(ctx context.Context, _ *http.Request, in service.NewDashboard) (*service.Dashboard, error) {
	return h.service.UpdateDashboard(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func (h *dashboardsHandler) DeleteDashboard(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	err := h.service.DeleteDashboard(ctx, chi.URLParamFromCtx(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return &transport.Empty{}, nil
}

func (h *dashboardsHandler) Chat(ctx context.Context, _ *http.Request, in service.ChatMessage) (*service.ChatResponse, error) {
	return h.service.Chat(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func NewDashboardsHandler(s service.DashboardService) *dashboardsHandler {
	return &dashboardsHandler{service: s}
}
