package mock

import (
	"context"

	"github.com/securebi/securebi-backend/pkg/database/gensql"
	"github.com/securebi/securebi-backend/pkg/service/core/storage/postgres"
	"github.com/stretchr/testify/mock"
)

var _ postgres.DataCubeQueries = &DataCubeQueriesMock{}

type DataCubeQueriesMock struct {
	mock.Mock
}

func (m *DataCubeQueriesMock) GetDataCubes(ctx context.Context) ([]gensql.DataCube, error) {
	args := m.Called(ctx)
	return args.Get(0).([]gensql.DataCube), args.Error(1)
}

func (m *DataCubeQueriesMock) GetDataCube(ctx context.Context, id string) (gensql.DataCube, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(gensql.DataCube), args.Error(1)
}

func (m *DataCubeQueriesMock) SearchDataCubes(ctx context.Context, query string) ([]gensql.DataCube, error) {
	args := m.Called(ctx, query)
	return args.Get(0).([]gensql.DataCube), args.Error(1)
}

func (m *DataCubeQueriesMock) CreateDataCube(ctx context.Context, arg gensql.CreateDataCubeParams) (gensql.DataCube, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.DataCube), args.Error(1)
}

func (m *DataCubeQueriesMock) UpdateDataCube(ctx context.Context, arg gensql.UpdateDataCubeParams) (gensql.DataCube, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(gensql.DataCube), args.Error(1)
}

func (m *DataCubeQueriesMock) DeleteDataCube(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}
