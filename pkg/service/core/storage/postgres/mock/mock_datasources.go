package mock

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/database"
	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/service/core/storage/postgres"
	"github.com/stretchr/testify/mock"
)

var _ postgres.DataSourceQueries = &DataSourceQueriesMock{}

type DataSourceQueriesMock struct {
	mock.Mock
}

func DataSourceQueriesWithTxFn(m *DataSourceQueriesMock, t database.Transacter, err error) func() (postgres.DataSourceQueries, database.Transacter, error) {
	return func() (postgres.DataSourceQueries, database.Transacter, error) {
		return m, t, err
	}
}

func (m *DataSourceQueriesMock) GetDataSources(ctx context.Context) ([]gensql.DataSource, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.DataSource), args.Error(1)
}

func (m *DataSourceQueriesMock) GetDataSource(ctx context.Context, id string) (gensql.DataSource, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(gensql.DataSource), args.Error(1)
}

func (m *DataSourceQueriesMock) CreateDataSource(ctx context.Context, arg gensql.CreateDataSourceParams) (gensql.DataSource, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.DataSource), args.Error(1)
}

func (m *DataSourceQueriesMock) UpdateDataSource(ctx context.Context, arg gensql.UpdateDataSourceParams) (gensql.DataSource, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.DataSource), args.Error(1)
}

func (m *DataSourceQueriesMock) UpdateDataSourceLastSync(ctx context.Context, arg gensql.UpdateDataSourceLastSyncParams) (int64, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DataSourceQueriesMock) DeleteDataSource(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *DataSourceQueriesMock) GetTablesForDataSource(ctx context.Context, dataSourceID string) ([]gensql.Table, error) {
	args := m.Called(ctx, dataSourceID)
	return args.Get(0).([]gensql.Table), args.Error(1)
}

func (m *DataSourceQueriesMock) GetAllTables(ctx context.Context) ([]gensql.Table, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.Table), args.Error(1)
}

func (m *DataSourceQueriesMock) CreateTable(ctx context.Context, arg gensql.CreateTableParams) (gensql.Table, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.Table), args.Error(1)
}

func (m *DataSourceQueriesMock) DeleteTablesForDataSource(ctx context.Context, dataSourceID string) error {
	args := m.Called(ctx, dataSourceID)
	return args.Error(0)
}
