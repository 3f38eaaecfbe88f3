package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/transport"
)

type DataCubeEndpoints struct {
	GetDataCubes     http.HandlerFunc
	CreateDataCube   http.HandlerFunc
	UpdateDataCube   http.HandlerFunc
	DeleteDataCube   http.HandlerFunc
	PreviewDataCube  http.HandlerFunc
	GenerateDataCube http.HandlerFunc
	QueryDataCubes   http.HandlerFunc
}

func NewDataCubeEndpoints(log zerolog.Logger, h *handlers.Handlers) *DataCubeEndpoints {
	return &DataCubeEndpoints{
		GetDataCubes:     transport.For(h.DataCubesHandler.GetDataCubes).Build(log),
		CreateDataCube:   transport.For(h.DataCubesHandler.CreateDataCube).RequestFromJSON().Build(log),
		UpdateDataCube:   transport.For(h.DataCubesHandler.UpdateDataCube).RequestFromJSON().Build(log),
		DeleteDataCube:   transport.For(h.DataCubesHandler.DeleteDataCube).Build(log),
		PreviewDataCube:  transport.For(h.DataCubesHandler.PreviewDataCube).RequestFromJSON().Build(log),
		GenerateDataCube: transport.For(h.DataCubesHandler.GenerateDataCube).RequestFromJSON().Build(log),
		QueryDataCubes:   transport.For(h.DataCubesHandler.QueryDataCubes).RequestFromJSON().Build(log),
	}
}

func NewDataCubeRoutes(endpoints *DataCubeEndpoints, auth func(http.Handler) http.Handler) AddRoutesFn {
	return func(router chi.Router) {
		router.Route("/api/data-cubes", func(r chi.Router) {
			r.Use(auth)
			r.Get("/", endpoints.GetDataCubes)
			r.Post("/", endpoints.CreateDataCube)
			r.Post("/generate", endpoints.GenerateDataCube)
			r.Post("/query", endpoints.QueryDataCubes)
			r.Put("/{id}", endpoints.UpdateDataCube)
			r.Delete("/{id}", endpoints.DeleteDataCube)
			r.Post("/{id}/preview", endpoints.PreviewDataCube)
		})
	}
}
