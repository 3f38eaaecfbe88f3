package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type dataSourcesHandler struct {
	service service.DataSourceService
}

func (h *dataSourcesHandler) GetDataSources(ctx context.Context, _ *http.Request, _ any) ([]*service.DataSource, error) {
	return h.service.GetDataSources(ctx)
}

func (h *dataSourcesHandler) CreateDataSource(ctx context.Context, _ *http.Request, in service.NewDataSource) (*transport.Created[*service.DataSource], error) {
	ds, err := h.service.CreateDataSource(ctx, &in)
	if err != nil {
		return nil, err
	}

	return transport.NewCreated(ds), nil
}

func (h *dataSourcesHandler) UpdateDataSource(ctx context.Context, _ *http.Request, in service.DataSourceUpdate) (*service.DataSource, error) {
	return h.service.UpdateDataSource(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func (h *dataSourcesHandler) DeleteDataSource(ctx context.Context, _ *http.Request, _ any) (*transport.Empty, error) {
	err := h.service.DeleteDataSource(ctx, chi.URLParamFromCtx(ctx, "id"))
	if err != nil {
		return nil, err
	}

	return &transport.Empty{}, nil
}

func (h *dataSourcesHandler) GetSchema(ctx context.Context, _ *http.Request, _ any) (*service.SchemaResponse, error) {
	return h.service.GetSchema(ctx, chi.URLParamFromCtx(ctx, "id"))
}

func (h *dataSourcesHandler) UpdateSchema(ctx context.Context, _ *http.Request, in service.UpdateSchemaRequest) (*service.SchemaResponse, error) {
	return h.service.UpdateSchema(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func (h *dataSourcesHandler) TestConnection(ctx context.Context, _ *http.Request, _ any) (*service.TestConnectionResult, error) {
	return h.service.TestConnection(ctx, chi.URLParamFromCtx(ctx, "id"))
}

func (h *dataSourcesHandler) PreviewSQL(ctx context.Context, _ *http.Request, in service.SQLPreviewRequest) (*service.QueryResult, error) {
	return h.service.PreviewSQL(ctx, chi.URLParamFromCtx(ctx, "id"), &in)
}

func NewDataSourcesHandler(s service.DataSourceService) *dataSourcesHandler {
	return &dataSourcesHandler{service: s}
}
