package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type dataCubesHandler struct {
	service service.DataCubeService
}

func (h *dataCubesHandler) GetDataCubes(ctx context.Context, _ *http.Request, _ any) ([]*service.DataCube, error) {
	return h.service.GetDataCubes(ctx)
}

func (h *dataCubesHandler) CreateDataCube(ctx context.Context, _ *http.Request, in service.NewDataCube) (*transport.Created[*service.DataCube], error) {
	cube, err := h.service.CreateDataCube(ctx, &in)
	if err != nil {
		return nil, err
	}

	return transport.NewCreated(cube), nil
}

func (h *dataCubesHandler) UpdateDataCube(ctx context.Context, _ *http.Request, in service.NewDataCube) (*service.DataCube, error) {
	return h.service.UpdateDataCube(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func (h *dataCubesHandler) DeleteDataCube(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	err := h.service.DeleteDataCube(ctx, chi.URLParamFromCtx(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return &transport.Empty{}, nil
}

func (h *dataCubesHandler) PreviewDataCube(ctx context.Context, _ *http.Request, in service.CubePreviewRequest) (*service.QueryResult, error) {
	return h.service.PreviewDataCube(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func (h *dataCubesHandler) GenerateDataCube(ctx context.Context, _ *http.Request, in service.GenerateCubeRequest) (*cubegen.CubeStructure, error) {
	return h.service.GenerateDataCube(ctx, &in)
}

func (h *dataCubesHandler) QueryDataCubes(ctx context.Context, _ *http.Request, in service.CubeQueryRequest) (*service.CubeQueryResult, error) {
	return h.service.QueryDataCubes(ctx, &in)
}

func NewDataCubesHandler(s service.DataCubeService) *dataCubesHandler {
	return &dataCubesHandler{service: s}
}
