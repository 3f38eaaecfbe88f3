package routes_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/auth"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service/core"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) chi.Router {
	t.Helper()

	log := zerolog.Nop()
	h := handlers.NewHandlers(&core.Services{})
	authenticator := auth.NewMiddleware(auth.DefaultUserID, log)

	r := chi.NewRouter()
	routes.Add(r, []string{"http://localhost:3000"},
		routes.NewStatusRoutes(routes.NewStatusEndpoints(log, h)),
		routes.NewDataSourceRoutes(routes.NewDataSourceEndpoints(log, h), authenticator.Handler),
		routes.NewDataCubeRoutes(routes.NewDataCubeEndpoints(log, h), authenticator.Handler),
		routes.NewDashboardRoutes(routes.NewDashboardEndpoints(log, h), authenticator.Handler),
		routes.NewEntitlementRoutes(routes.NewEntitlementEndpoints(log, h), authenticator.Handler),
		routes.NewMarketplaceRoutes(routes.NewMarketplaceEndpoints(log, h), authenticator.Handler),
		routes.NewAppConfigRoutes(routes.NewAppConfigEndpoints(log, h), authenticator.Handler),
	)

	return r
}

func TestStatusRoutes(t *testing.T) {
	r := newRouter(t)

	testCases := []struct {
		path   string
		expect map[string]string
	}{
		{
			path:   "/",
			expect: map[string]string{"message": "SecureBI Backend API", "status": "running"},
		},
		{
			path:   "/health",
			expect: map[string]string{"status": "healthy"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))

			require.Equal(t, http.StatusOK, rec.Code)

			got := map[string]string{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tc.expect, got)
		})
	}
}

func TestValidationFailures(t *testing.T) {
	r := newRouter(t)

	testCases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{
			name:   "data source without name",
			method: http.MethodPost,
			path:   "/api/data-sources",
			body:   `{"type":"postgresql","host":"localhost","port":5432,"database":"orders","username":"app"}`,
		},
		{
			name:   "data source with unknown type",
			method: http.MethodPost,
			path:   "/api/data-sources",
			body:   `{"name":"x","type":"oracle","host":"localhost","port":5432,"database":"orders","username":"app"}`,
		},
		{
			name:   "cube generation without request",
			method: http.MethodPost,
			path:   "/api/data-cubes/generate",
			body:   `{"dataSourceId":"source-1"}`,
		},
		{
			name:   "entitlement with unknown permission",
			method: http.MethodPost,
			path:   "/api/data-entitlement",
			body:   `{"userId":"user-1","resourceType":"dataCube","resourceId":"cube-1","permissions":["admin"],"grantedBy":"admin"}`,
		},
		{
			name:   "empty chat message",
			method: http.MethodPost,
			path:   "/api/dashboards/dashboard-1/ai-chat",
			body:   `{"message":""}`,
		},
		{
			name:   "app config without key",
			method: http.MethodPost,
			path:   "/api/app-config",
			body:   `{}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body)))

			require.Equal(t, http.StatusBadRequest, rec.Code)

			got := errs.ErrorResponse{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, errs.Validation.String(), got.Kind)
			assert.NotEmpty(t, got.Detail)
		})
	}
}

func TestMalformedJSON(t *testing.T) {
	r := newRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/data-cubes", strings.NewReader(`{"name":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPrint(t *testing.T) {
	buf := &bytes.Buffer{}

	err := routes.Print(newRouter(t), buf)
	require.NoError(t, err)

	out := buf.String()
	for _, want := range []string{
		"/api/data-sources/{id}/preview-sql",
		"/api/data-cubes/generate",
		"/api/dashboards/{id}/ai-chat",
		"/api/data-entitlement/{id}",
		"/api/data-marketplace/",
		"/api/app-config/{key}",
		"/health",
	} {
		assert.Contains(t, out, want)
	}
}
