package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type DataSourceEndpoints struct {
	GetDataSources   http.HandlerFunc
	CreateDataSource http.HandlerFunc
	UpdateDataSource http.HandlerFunc
	DeleteDataSource http.HandlerFunc
	GetSchema        http.HandlerFunc
	UpdateSchema     http.HandlerFunc
	TestConnection   http.HandlerFunc
	PreviewSQL       http.HandlerFunc
}

func NewDataSourceEndpoints(log zerolog.Logger, h *handlers.Handlers) *DataSourceEndpoints {
	return &DataSourceEndpoints{
		GetDataSources:   transport.For(h.DataSourcesHandler.GetDataSources).Build(log),
		CreateDataSource: transport.For(h.DataSourcesHandler.CreateDataSource).RequestFromJSON().Build(log),
		UpdateDataSource: transport.For(h.DataSourcesHandler.UpdateDataSource).RequestFromJSON().Build(log),
		DeleteDataSource: transport.For(h.DataSourcesHandler.DeleteDataSource).Build(log),
		GetSchema:        transport.For(h.DataSourcesHandler.GetSchema).Build(log),
		UpdateSchema:     transport.For(h.DataSourcesHandler.UpdateSchema).RequestFromJSON().Build(log),
		TestConnection:   transport.For(h.DataSourcesHandler.TestConnection).Build(log),
		PreviewSQL:       transport.For(h.DataSourcesHandler.PreviewSQL).RequestFromJSON().Build(log),
	}
}

func NewDataSourceRoutes(endpoints *DataSourceEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/api/data-sources", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", endpoints.GetDataSources)
			r.Post("/", endpoints.CreateDataSource)
			r.Put("/{id}", endpoints.UpdateDataSource)
			r.Delete("/{id}", endpoints.DeleteDataSource)
			r.Get("/{id}/schema", endpoints.GetSchema)
			r.Put("/{id}/schema", endpoints.UpdateSchema)
			r.Post("/{id}/test-connection", endpoints.TestConnection)
			r.Post("/{id}/preview-sql", endpoints.PreviewSQL)
		})
	}
}
