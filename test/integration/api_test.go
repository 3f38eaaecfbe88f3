package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/goccy/bigquery-emulator/types"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/auth"
	"github.com/securebi/securebi-backend/pkg/bq"
	"github.com/securebi/securebi-backend/pkg/bq/emulator"
	"github.com/securebi/securebi-backend/pkg/cache"
	"github.com/securebi/securebi-backend/pkg/config/v2"
	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/database"
	"github.com/securebi/securebi-backend/pkg/errs"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/securebi/securebi-backend/pkg/service/core"
	apiclients "github.com/securebi/securebi-backend/pkg/service/core/api"
	"github.com/securebi/securebi-backend/pkg/service/core/handlers"
	"github.com/securebi/securebi-backend/pkg/service/core/routes"
	"github.com/securebi/securebi-backend/pkg/service/core/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const generatedCube = "```json\n" +
	`{"cube_name":"Orders by status","description":"Order count per status","sql_query":"SELECT status, COUNT(*) AS orders FROM shop.orders GROUP BY status","dimensions":[{"name":"status"}],"measures":[{"name":"orders"}]}` +
	"\n```"

// scriptedModel answers chat prompts with a fixed reply and everything else
// with a generated cube.
type scriptedModel struct{}

func (m *scriptedModel) Generate(_ context.Context, prompt string) (string, error) {
	if strings.Contains(prompt, "Question:") {
		return "  Shipped orders dominate.\n", nil
	}

	return generatedCube, nil
}

func (m *scriptedModel) Backend() string {
	return "scripted"
}

func warehouseDataset() *emulator.Dataset {
	return &emulator.Dataset{
		DatasetID: "warehouse",
		TableID:   "sales",
		Columns: []*types.Column{
			emulator.Column("region", types.STRING),
			emulator.Column("amount", types.FLOAT64),
		},
		Rows: types.Data{
			{"region": "north", "amount": 10.5},
			{"region": "south", "amount": 20.0},
			{"region": "east", "amount": 7.25},
		},
	}
}

func TestAPI(t *testing.T) {
	log := zerolog.New(os.Stdout)

	c := NewContainers(t, log)
	defer c.Cleanup()

	pgCfg := c.RunPostgres(NewPostgresConfig())

	repo, err := database.New(pgCfg.ConnectionURL(), 10, 10, log)
	require.NoError(t, err)

	em := emulator.New(log)
	defer em.Cleanup()

	em.WithProject("test-project", warehouseDataset())
	em.TestServer()

	model := &scriptedModel{}
	clients := apiclients.NewClients(
		cache.New(time.Minute, repo.GetDB(), log),
		bq.NewClient(em.Endpoint(), false, log),
		cubegen.New(model, log),
		model,
		config.Config{BigQuery: config.BigQuery{Location: "US"}},
	)

	h := handlers.NewHandlers(core.NewServices(storage.NewStores(repo), clients))
	user := &auth.MockUser

	r := TestRouter(log)
	routes.Add(r, []string{"http://localhost:3000"},
		routes.NewStatusRoutes(routes.NewStatusEndpoints(log, h)),
		routes.NewDataSourceRoutes(routes.NewDataSourceEndpoints(log, h), auth.MockMiddleware()),
		routes.NewDataCubeRoutes(routes.NewDataCubeEndpoints(log, h), auth.MockMiddleware()),
		routes.NewDashboardRoutes(routes.NewDashboardEndpoints(log, h), auth.MockMiddleware()),
		routes.NewEntitlementRoutes(routes.NewEntitlementEndpoints(log, h), auth.MockMiddleware()),
		routes.NewMarketplaceRoutes(routes.NewMarketplaceEndpoints(log, h), auth.MockMiddleware()),
		routes.NewAppConfigRoutes(routes.NewAppConfigEndpoints(log, h), auth.MockMiddleware()),
	)

	server := httptest.NewServer(r)
	defer server.Close()

	shop := &service.DataSource{}
	warehouse := &service.DataSource{}
	cube := &service.DataCube{}
	dashboard := &service.Dashboard{}

	tables := []*service.TableSchema{
		{
			Name:   "orders",
			Schema: strPtr("shop"),
			Columns: []*service.ColumnSchema{
				{Name: "id", Type: "INTEGER", PrimaryKey: true},
				{Name: "status", Type: "TEXT"},
				{Name: "customer_id", Type: "INTEGER", ForeignKey: map[string]string{"table": "customers", "column": "id"}},
			},
			RowCount: 42,
		},
	}

	t.Run("Create data sources", func(t *testing.T) {
		NewTester(t, server).
			Post(&service.NewDataSource{
				Name:     "Shop",
				Type:     service.DataSourceTypePostgreSQL,
				Host:     "db.internal",
				Port:     5432,
				Database: "shop",
				Username: "reader",
				Password: strPtr("secret"),
			}, "/api/data-sources").
			HasStatusCode(http.StatusCreated).
			Value(shop)

		assert.True(t, strings.HasPrefix(shop.ID, "source-"))
		assert.Equal(t, "Shop", shop.Name)
		assert.Empty(t, shop.Password)

		NewTester(t, server).
			Post(&service.NewDataSource{
				Name:      "Warehouse",
				Type:      service.DataSourceTypeBigQuery,
				Host:      "test-project",
				Database:  "warehouse",
				Username:  "service-account",
				ProjectID: strPtr("test-project"),
				Dataset:   strPtr("warehouse"),
			}, "/api/data-sources").
			HasStatusCode(http.StatusCreated).
			Value(warehouse)

		got := []*service.DataSource{}
		NewTester(t, server).
			Get("/api/data-sources").
			HasStatusCode(http.StatusOK).
			Value(&got)

		assert.Len(t, got, 2)
	})

	t.Run("Update data source", func(t *testing.T) {
		got := &service.DataSource{}

		NewTester(t, server).
			Put(&service.DataSourceUpdate{Name: strPtr("Shop replica")}, "/api/data-sources/"+shop.ID).
			HasStatusCode(http.StatusOK).
			Value(got)

		assert.Equal(t, "Shop replica", got.Name)
		assert.Equal(t, "db.internal", got.Host)

		NewTester(t, server).
			Put(&service.DataSourceUpdate{Name: strPtr("x")}, "/api/data-sources/source-missing").
			HasStatusCode(http.StatusNotFound)
	})

	t.Run("Replace and read schema", func(t *testing.T) {
		NewTester(t, server).
			Put(&service.UpdateSchemaRequest{Tables: tables}, "/api/data-sources/"+shop.ID+"/schema").
			HasStatusCode(http.StatusOK).
			Expect(&service.SchemaResponse{Tables: tables}, &service.SchemaResponse{})

		NewTester(t, server).
			Get("/api/data-sources/"+shop.ID+"/schema").
			HasStatusCode(http.StatusOK).
			Expect(&service.SchemaResponse{Tables: tables}, &service.SchemaResponse{})

		NewTester(t, server).
			Put(&service.UpdateSchemaRequest{Tables: []*service.TableSchema{}}, "/api/data-sources/source-doesnotexist/schema").
			HasStatusCode(http.StatusNotFound)
	})

	t.Run("Test connection", func(t *testing.T) {
		got := &service.TestConnectionResult{}

		NewTester(t, server).
			Post(nil, "/api/data-sources/"+shop.ID+"/test-connection").
			HasStatusCode(http.StatusOK).
			Value(got)

		assert.True(t, got.Success)
		assert.Equal(t, service.DataSourceStatusConnected, got.Status)

		got = &service.TestConnectionResult{}
		NewTester(t, server).
			Post(nil, "/api/data-sources/"+warehouse.ID+"/test-connection").
			HasStatusCode(http.StatusOK).
			Value(got)

		assert.True(t, got.Success)
		assert.Equal(t, "Connected to BigQuery dataset test-project.warehouse.", got.Message)
	})

	t.Run("Preview SQL", func(t *testing.T) {
		NewTester(t, server).
			Post(&service.SQLPreviewRequest{
				SQL:     "SELECT region FROM `test-project.warehouse.sales` ORDER BY region",
				MaxRows: intPtr(2),
			}, "/api/data-sources/"+warehouse.ID+"/preview-sql").
			HasStatusCode(http.StatusOK).
			Expect(&service.QueryResult{
				Columns: []string{"region"},
				Rows: []map[string]any{
					{"region": "east"},
					{"region": "north"},
				},
			}, &service.QueryResult{})

		got := &errs.ErrorResponse{}
		NewTester(t, server).
			Post(&service.SQLPreviewRequest{SQL: "SELECT 1"}, "/api/data-sources/"+shop.ID+"/preview-sql").
			HasStatusCode(http.StatusBadRequest).
			Value(got)

		assert.Equal(t, errs.InvalidRequest.String(), got.Kind)
	})

	t.Run("Generate data cube", func(t *testing.T) {
		NewTester(t, server).
			Post(&service.GenerateCubeRequest{
				UserRequest:  "orders per status",
				DataSourceID: shop.ID,
			}, "/api/data-cubes/generate").
			HasStatusCode(http.StatusOK).
			Expect(&cubegen.CubeStructure{
				Name:        "Orders by status",
				Description: "Order count per status",
				Query:       "SELECT status, COUNT(*) AS orders FROM shop.orders GROUP BY status",
				Dimensions:  []string{"status"},
				Measures:    []string{"orders"},
				Metadata:    map[string]any{},
			}, &cubegen.CubeStructure{}, cmpopts.EquateEmpty())
	})

	t.Run("Create and query data cubes", func(t *testing.T) {
		NewTester(t, server).
			Post(&service.NewDataCube{
				Name:         "Sales by region",
				Description:  "Revenue per region",
				Query:        "SELECT region, SUM(amount) AS total FROM `test-project.warehouse.sales` GROUP BY region;",
				DataSourceID: warehouse.ID,
				Dimensions:   []string{"region"},
				Measures:     []string{"total"},
				Metadata:     map[string]any{"owner": "analytics"},
			}, "/api/data-cubes").
			HasStatusCode(http.StatusCreated).
			Value(cube)

		assert.True(t, strings.HasPrefix(cube.ID, "cube-"))

		NewTester(t, server).
			Post(&service.NewDataCube{
				Name:         "Orphan",
				Query:        "SELECT 1",
				DataSourceID: "source-missing",
				Dimensions:   []string{},
				Measures:     []string{},
			}, "/api/data-cubes").
			HasStatusCode(http.StatusNotFound)

		got := &service.CubeQueryResult{}
		NewTester(t, server).
			Post(&service.CubeQueryRequest{Query: "revenue"}, "/api/data-cubes/query").
			HasStatusCode(http.StatusOK).
			Value(got)

		require.Len(t, got.Data, 1)
		assert.Equal(t, cube.ID, got.Data[0].ID)
		assert.Equal(t, service.CubeQueryColumns, got.Columns)
	})

	t.Run("Preview data cube", func(t *testing.T) {
		got := &service.QueryResult{}

		NewTester(t, server).
			Post(&service.CubePreviewRequest{Limit: intPtr(2)}, "/api/data-cubes/"+cube.ID+"/preview").
			HasStatusCode(http.StatusOK).
			Value(got)

		assert.Len(t, got.Rows, 2)
		assert.ElementsMatch(t, []string{"region", "total"}, got.Columns)
	})

	t.Run("Dashboards and chat", func(t *testing.T) {
		NewTester(t, server).
			Post(&service.NewDashboard{
				Name:       "Regional sales",
				DataCubeID: cube.ID,
				Widgets: []*service.Widget{
					{ID: "w1", Type: "bar", Title: "Revenue by region", Config: map[string]any{}, Width: 6, Height: 4},
				},
			}, "/api/dashboards").
			HasStatusCode(http.StatusCreated).
			Value(dashboard)

		assert.True(t, strings.HasPrefix(dashboard.ID, "dashboard-"))
		require.Len(t, dashboard.Widgets, 1)

		got := &service.Dashboard{}
		NewTester(t, server).
			Get("/api/dashboards/"+dashboard.ID).
			HasStatusCode(http.StatusOK).
			Value(got)

		assert.Equal(t, dashboard.ID, got.ID)

		reply := &service.ChatResponse{}
		NewTester(t, server).
			Post(&service.ChatMessage{Message: "Which region sells most?"}, "/api/dashboards/"+dashboard.ID+"/ai-chat").
			HasStatusCode(http.StatusOK).
			Value(reply)

		assert.Equal(t, "Shipped orders dominate.", reply.Response)
		assert.False(t, reply.Timestamp.IsZero())

		NewTester(t, server).
			Post(&service.ChatMessage{Message: "hi"}, "/api/dashboards/dashboard-missing/ai-chat").
			HasStatusCode(http.StatusNotFound)
	})

	t.Run("Entitlements", func(t *testing.T) {
		created := &service.Entitlement{}

		NewTester(t, server).
			Post(&service.NewEntitlement{
				UserID:       user.ID,
				ResourceType: service.ResourceTypeDashboard,
				ResourceID:   dashboard.ID,
				Permissions:  []service.Permission{service.PermissionRead},
				GrantedBy:    "admin",
			}, "/api/data-entitlement").
			HasStatusCode(http.StatusCreated).
			Value(created)

		assert.True(t, strings.HasPrefix(created.ID, "ent-"))

		got := []*service.EntitledResource{}
		NewTester(t, server).
			Get("/api/data-entitlement").
			HasStatusCode(http.StatusOK).
			Value(&got)

		require.Len(t, got, 1)
		assert.Equal(t, "Regional sales", got[0].ResourceName)

		NewTester(t, server).
			Delete("/api/data-entitlement/" + created.ID).
			HasStatusCode(http.StatusNoContent)
	})

	t.Run("Marketplace", func(t *testing.T) {
		got := &service.Marketplace{}

		NewTester(t, server).
			Get("/api/data-marketplace").
			HasStatusCode(http.StatusOK).
			Value(got)

		assert.Len(t, got.DataSources, 2)
		assert.Len(t, got.DataCubes, 1)
		assert.Len(t, got.Dashboards, 1)

		for _, ds := range got.DataSources {
			if ds.ID == shop.ID {
				assert.Len(t, ds.Tables, 1)
			}
		}
	})

	t.Run("App config", func(t *testing.T) {
		created := &service.AppConfig{}

		NewTester(t, server).
			Post(&service.NewAppConfig{Key: "theme", Value: strPtr("dark")}, "/api/app-config").
			HasStatusCode(http.StatusCreated).
			Value(created)

		assert.Equal(t, "theme", created.Key)

		got := &service.AppConfig{}
		NewTester(t, server).
			Put(&service.AppConfigUpdate{Value: strPtr("light")}, "/api/app-config/theme").
			HasStatusCode(http.StatusOK).
			Value(got)

		require.NotNil(t, got.Value)
		assert.Equal(t, "light", *got.Value)

		NewTester(t, server).
			Delete("/api/app-config/theme").
			HasStatusCode(http.StatusNoContent)

		NewTester(t, server).
			Get("/api/app-config/theme").
			HasStatusCode(http.StatusNotFound)
	})

	t.Run("Delete resources", func(t *testing.T) {
		NewTester(t, server).
			Delete("/api/dashboards/" + dashboard.ID).
			HasStatusCode(http.StatusNoContent)

		NewTester(t, server).
			Delete("/api/data-cubes/" + cube.ID).
			HasStatusCode(http.StatusNoContent)

		NewTester(t, server).
			Delete("/api/data-sources/" + shop.ID).
			HasStatusCode(http.StatusNoContent)

		NewTester(t, server).
			Delete("/api/data-sources/" + shop.ID).
			HasStatusCode(http.StatusNotFound)
	})
}

func intPtr(i int) *int {
	return &i
}
