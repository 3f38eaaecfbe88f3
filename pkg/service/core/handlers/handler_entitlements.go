package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/securebi/securebi-backend/pkg/auth"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type entitlementsHandler struct {
	service service.EntitlementService
}

func (h *entitlementsHandler) GetEntitledResources(ctx context.Context, _ *http.Request, _ any) ([]*service.EntitledResource, error) {
	const op errs.Op = "entitlementsHandler.GetEntitledResources"

	user := auth.GetUser(ctx)
	if user == nil {
		return nil, errs.E(errs.Unauthenticated, op, "no user in request")
	}

	return h.service.GetEntitledResources(ctx, user)
}

func (h *entitlementsHandler) CreateEntitlement(ctx context.Context, _ *http.Request, in service.NewEntitlement) (*transport.Created[*service.Entitlement], error) {
	entitlement, err := h.service.CreateEntitlement(ctx, &in)
	if err != nil {
		return nil, err
	}

	return transport.NewCreated(entitlement), nil
}

func (h *entitlementsHandler) DeleteEntitlement(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	err := h.service.DeleteEntitlement(ctx, chi.URLParamFromCtx(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return &transport.Empty{}, nil
}

func NewEntitlementsHandler(s service.EntitlementService) *entitlementsHandler {
	return &entitlementsHandler{service: s}
}
