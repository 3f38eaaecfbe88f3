package emulator

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httputil"

	"github.com/go-chi/chi"
	"github.com/goccy/bigquery-emulator/server"
	"github.com/goccy/bigquery-emulator/types"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

type Emulator struct {
	testServer *server.TestServer
	emulator   *server.Server
	log        zerolog.Logger
}

type EndpointMock struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

type Dataset struct {
	DatasetID string
	TableID   string
	Columns   []*types.Column
	Rows      types.Data
}

func Column(name string, typ types.Type) *types.Column {
	return &types.Column{
		Name: name,
		Type: typ,
		Mode: types.NullableMode,
	}
}

func ColumnNullable(name string) *types.Column {
	return Column(name, types.STRING)
}

func ColumnRequired(name string) *types.Column {
	return &types.Column{
		Name: name,
		Type: types.STRING,
		Mode: types.RequiredMode,
	}
}

func (e *Emulator) EnableMock(debugRequest bool, mocks ...*EndpointMock) {
	e.log.Info().Msg("Enabling mocks")

	handler := e.emulator.Handler

	router := chi.NewRouter()

	debugFn := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if debugRequest {
				request, err := httputil.DumpRequest(r, true)
				if err != nil {
					e.log.Error().Err(err).Msg("Failed to dump request")
				}

				fmt.Println(string(request))
			}

			next.ServeHTTP(w, r)
		})
	}

	for _, mock := range mocks {
		e.log.Info().Msgf("Adding mock endpoint: %s %s", mock.Method, mock.Path)
		router.With(debugFn).MethodFunc(mock.Method, mock.Path, mock.Handler)
	}

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		e.log.Info().Msgf("No mocked endpoint found, forwarding to emulator: %s", r.URL.Path)
		handler.ServeHTTP(w, r)
	})

	e.emulator.Handler = router
}

// TestServer starts serving the loaded projects, call it after WithProject
// and EnableMock.
func (e *Emulator) TestServer() {
	e.testServer = e.emulator.TestServer()
}

func (e *Emulator) Cleanup() {
	if e.testServer != nil {
		e.testServer.Close()
	}

	_ = e.emulator.Stop(context.Background())
}

func (e *Emulator) Endpoint() string {
	return e.testServer.URL
}

func (e *Emulator) WithProject(projectID string, datasets ...*Dataset) {
	p := &types.Project{
		ID: projectID,
	}

	for _, ds := range datasets {
		if ds == nil {
			continue
		}

		d := &types.Dataset{
			ID: ds.DatasetID,
		}

		if ds.TableID != "" {
			d.Tables = append(d.Tables, &types.Table{
				ID:      ds.TableID,
				Columns: ds.Columns,
				Data:    ds.Rows,
			})
		}

		p.Datasets = append(p.Datasets, d)
	}

	e.WithSource(p.ID, server.StructSource(p))
}

func (e *Emulator) WithSource(projectID string, source server.Source) {
	err := e.emulator.Load(source)
	if err != nil {
		e.log.Fatal().Err(err).Msg("initializing bigquery emulator")
	}

	if err := e.emulator.SetProject(projectID); err != nil {
		e.log.Fatal().Err(err).Msg("setting project")
	}
}

func New(log zerolog.Logger) *Emulator {
	s, err := server.New(server.TempStorage)
	if err != nil {
		log.Fatal().Err(err).Msg("creating bigquery emulator")
	}

	return &Emulator{
		emulator: s,
		log:      log,
	}
}

// DatasetGetErrorMock answers dataset lookups with the given status code, in
// the error format the Google API clients expect.
func DatasetGetErrorMock(projectID, datasetID string, code int, message string) *EndpointMock {
	handlerFn := func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)

		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    code,
				"message": message,
				"errors": []map[string]any{
					{"reason": "accessDenied", "message": message},
				},
			},
		})
	}

	return &EndpointMock{
		Method:  http.MethodGet,
		Path:    fmt.Sprintf("/projects/%s/datasets/%s", projectID, datasetID),
		Handler: handlerFn,
	}
}
