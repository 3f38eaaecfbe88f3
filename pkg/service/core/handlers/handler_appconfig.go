package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type appConfigHandler struct {
	service service.AppConfigService
}

func (h *appConfigHandler) GetAppConfigs(ctx context.Context, _ *http.Request, _ any) ([]*service.AppConfig, error) {
	return h.service.GetAppConfigs(ctx)
}

func (h *appConfigHandler) GetAppConfig(ctx context.Context, _ *http.Request, _ any) (*service.AppConfig, error) {
	return h.service.GetAppConfig(ctx, chi.URLParamFromCtx(ctx, "key"))
}

func (h *appConfigHandler) CreateAppConfig(ctx context.Context, _ *http.Request, in service.NewAppConfig) (*transport.Created[*service.AppConfig], error) {
	config, err := h.service.CreateAppConfig(ctx, &in)
	if err != nil {
		return nil, err
	}

	return transport.NewCreated(config), nil
}

func (h *appConfigHandler) UpdateAppConfig(ctx context.Context, _ *http.Request, in service.AppConfigUpdate) (*service.AppConfig, error) {
	return h.service.UpdateAppConfig(ctx, chi.URLParamFromCtx(ctx, "key"), &in)
}

func (h *appConfigHandler) DeleteAppConfig(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	err := h.service.DeleteAppConfig(ctx, chi.URLParamFromCtx(ctx, "key"))
	if err != nil {
		return nil, err
	}

	return &transport.Empty{}, nil
}

func NewAppConfigHandler(s service.AppConfigService) *appConfigHandler {
	return &appConfigHandler{service: s}
}
