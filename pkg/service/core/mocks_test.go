package core_test

import (
	"context"
	"time"

	"github.com/securebi/securebi-backend/pkg/cubegen"
	"github.com/securebi/securebi-backend/pkg/service"
	"github.com/stretchr/testify/mock"
)

type dataSourceStorageMock struct {
	mock.Mock
}

var _ service.DataSourceStorage = &dataSourceStorageMock{}

func (m *dataSourceStorageMock) GetDataSources(ctx context.Context) ([]*service.DataSource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*service.DataSource), args.Error(1)
}

func (m *dataSourceStorageMock) GetDataSource(ctx context.Context, id string) (*service.DataSource, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*service.DataSource), args.Error(1)
}

func (m *dataSourceStorageMock) CreateDataSource(ctx context.Context, id string, ds *service.NewDataSource) (*service.DataSource, error) {
	args := m.Called(ctx, id, ds)
	return args.Get(0).(*service.DataSource), args.Error(1)
}

func (m *dataSourceStorageMock) UpdateDataSource(ctx context.Context, id string, input *service.DataSourceUpdate) (*service.DataSource, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(*service.DataSource), args.Error(1)
}

func (m *dataSourceStorageMock) DeleteDataSource(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *dataSourceStorageMock) GetTables(ctx context.Context, dataSourceID string) ([]*service.TableSchema, error) {
	args := m.Called(ctx, dataSourceID)
	return args.Get(0).([]*service.TableSchema), args.Error(1)
}

func (m *dataSourceStorageMock) GetAllTables(ctx context.Context) (map[string][]*service.TableSchema, error) {
	args := m.Called(ctx)
	return args.Get(0).(map[string][]*service.TableSchema), args.Error(1)
}

func (m *dataSourceStorageMock) ReplaceTables(ctx context.Context, dataSourceID string, tables []*service.TableSchema, syncedAt time.Time) error {
	args := m.Called(ctx, dataSourceID, tables, syncedAt)
	return args.Error(0)
}

type bigQueryAPIMock struct {
	mock.Mock
}

var _ service.BigQueryAPI = &bigQueryAPIMock{}

func (m *bigQueryAPIMock) GetSchema(ctx context.Context, ds *service.DataSource) ([]*service.TableSchema, error) {
	args := m.Called(ctx, ds)
	return args.Get(0).([]*service.TableSchema), args.Error(1)
}

func (m *bigQueryAPIMock) GetDataset(ctx context.Context, ds *service.DataSource) (*service.BigQueryDataset, error) {
	args := m.Called(ctx, ds)
	return args.Get(0).(*service.BigQueryDataset), args.Error(1)
}

func (m *bigQueryAPIMock) Query(ctx context.Context, ds *service.DataSource, sql string, maxRows int) (*service.QueryResult, error) {
	args := m.Called(ctx, ds, sql, maxRows)
	return args.Get(0).(*service.QueryResult), args.Error(1)
}

func (m *bigQueryAPIMock) InvalidateSchema(dataSourceID string) {
	m.Called(dataSourceID)
}

type dataCubeStorageMock struct {
	mock.Mock
}

var _ service.DataCubeStorage = &dataCubeStorageMock{}

func (m *dataCubeStorageMock) GetDataCubes(ctx context.Context) ([]*service.DataCube, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*service.DataCube), args.Error(1)
}

func (m *dataCubeStorageMock) GetDataCube(ctx context.Context, id string) (*service.DataCube, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*service.DataCube), args.Error(1)
}

func (m *dataCubeStorageMock) SearchDataCubes(ctx context.Context, query string) ([]*service.DataCube, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]*service.DataCube), args.Error(1)
}

func (m *dataCubeStorageMock) CreateDataCube(ctx context.Context, id string, cube *service.NewDataCube) (*service.DataCube, error) {
	args := m.Called(ctx, id, cube)
	return args.Get(0).(*service.DataCube), args.Error(1)
}

func (m *dataCubeStorageMock) UpdateDataCube(ctx context.Context, id string, cube *service.NewDataCube) (*service.DataCube, error) {
	args := m.Called(ctx, id, cube)
	return args.Get(0).(*service.DataCube), args.Error(1)
}

func (m *dataCubeStorageMock) DeleteDataCube(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type cubeGenerationAPIMock struct {
	mock.Mock
}

var _ service.CubeGenerationAPI = &cubeGenerationAPIMock{}

func (m *cubeGenerationAPIMock) GenerateCube(ctx context.Context, req cubegen.Request) (*cubegen.CubeStructure, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*cubegen.CubeStructure), args.Error(1)
}

type dashboardStorageMock struct {
	mock.Mock
}

var _ service.DashboardStorage = &dashboardStorageMock{}

func (m *dashboardStorageMock) GetDashboards(ctx context.Context) ([]*service.Dashboard, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*service.Dashboard), args.Error(1)
}

func (m *dashboardStorageMock) GetDashboard(ctx context.Context, id string) (*service.Dashboard, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *dashboardStorageMock) CreateDashboard(ctx context.Context, id string, dashboard *service.NewDashboard) (*service.Dashboard, error) {
	args := m.Called(ctx, id, dashboard)
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *dashboardStorageMock) UpdateDashboard(ctx context.Context, id string, dashboard *service.NewDashboard) (*service.Dashboard, error) {
	args := m.Called(ctx, id, dashboard)
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *dashboardStorageMock) DeleteDashboard(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type chatAPIMock struct {
	mock.Mock
}

var _ service.ChatAPI = &chatAPIMock{}

func (m *chatAPIMock) Chat(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type entitlementStorageMock struct {
	mock.Mock
}

var _ service.EntitlementStorage = &entitlementStorageMock{}

func (m *entitlementStorageMock) GetEntitlementsForUser(ctx context.Context, userID string) ([]*service.Entitlement, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]*service.Entitlement), args.Error(1)
}

func (m *entitlementStorageMock) CreateEntitlement(ctx context.Context, id string, entitlement *service.NewEntitlement) (*service.Entitlement, error) {
	args := m.Called(ctx, id, entitlement)
	return args.Get(0).(*service.Entitlement), args.Error(1)
}

func (m *entitlementStorageMock) DeleteEntitlement(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

func intPtr(i int) *int {
	return &i
}
