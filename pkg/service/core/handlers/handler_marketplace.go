package handlers

import (
	"context"
	"net/http"

	"github.com/securebi/securebi-backend/pkg/service"
)

type marketplaceHandler struct {
	service service.MarketplaceService
}

func (h *marketplaceHandler) GetMarketplace(ctx context.Context, _ *http.Request, _ any) (*service.Marketplace, error) {
	return h.service.GetMarketplace(ctx)
}

func NewMarketplaceHandler(s service.MarketplaceService) *marketplaceHandler {
	return &marketplaceHandler{service: s}
}
